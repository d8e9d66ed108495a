package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formrefs/pkg/fieldref"
	"github.com/goliatone/go-formrefs/pkg/model"
	"github.com/goliatone/go-formrefs/pkg/render"
	"github.com/goliatone/go-formrefs/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
	passPos      int

	inputDefaults   []string
	inputValidators []func(string) error
	selectDefaults  []int
	confirmDefault  []bool
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputDefaults = append(s.inputDefaults, cfg.Default)
	s.inputValidators = append(s.inputValidators, cfg.Validator)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirmDefault = append(s.confirmDefault, cfg.Default)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectDefaults = append(s.selectDefaults, cfg.DefaultIndex)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRender_LoginSession(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"grace"},
		passwords: []string{"hunter2"},
		selectIdx: []int{1, 1},
		confirm:   []bool{true},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := testsupport.MustForm(t, testsupport.LoginForm, "login")
	out, err := r.Render(context.Background(), form, render.RenderOptions{
		Hidden: map[string]string{"_csrf": "tok"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `{"username":"grace","password":"hunter2","age":"major","plan":"pro","remember":"true","_csrf":"tok"}`
	if string(out) != want {
		t.Fatalf("payload mismatch\nwant: %s\n got: %s", want, out)
	}

	if diff := cmp.Diff([]string{"ada"}, driver.inputDefaults); diff != "" {
		t.Fatalf("input defaults mismatch (-want +got):\n%s", diff)
	}
	// age has no default; plan starts on free.
	if diff := cmp.Diff([]int{-1, 0}, driver.selectDefaults); diff != "" {
		t.Fatalf("select defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PrefillBecomesDefaults(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"grace"},
		passwords: []string{""},
		selectIdx: []int{0, 0},
		confirm:   []bool{false},
	}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(render.FormatPretty))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := testsupport.MustForm(t, testsupport.LoginForm, "login")
	out, err := r.Render(context.Background(), form, render.RenderOptions{
		Values: map[string]string{"username": "linus", "age": "major", "plan": "pro", "remember": "true"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{"linus"}, driver.inputDefaults); diff != "" {
		t.Fatalf("input defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1}, driver.selectDefaults); diff != "" {
		t.Fatalf("select defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true}, driver.confirmDefault); diff != "" {
		t.Fatalf("confirm defaults mismatch (-want +got):\n%s", diff)
	}

	want := "username=grace\npassword=\nage=minor\nplan=free\nremember=false\n"
	if string(out) != want {
		t.Fatalf("payload mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRender_DisabledOptionReprompts(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2, 0}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(render.FormatForm))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{Fields: []model.Field{{
		Name:    "plan",
		Control: model.ControlSelect,
		Options: []model.Option{{Value: "free"}, {Value: "pro"}, {Value: "legacy", Disabled: true}},
	}}}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "plan=free" {
		t.Fatalf("unexpected payload %q", out)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "unavailable") {
		t.Fatalf("expected one unavailable message, got %#v", driver.infoMessages)
	}
}

func TestRender_NumberReprompts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ten", " 10 "}}
	r, err := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{Fields: []model.Field{{Name: "count", Label: "Count", Control: model.ControlNumber}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"count":"10"}` {
		t.Fatalf("unexpected payload %s", out)
	}
	if diff := cmp.Diff([]string{"! Count expects a number"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_NumberPromptCarriesValidator(t *testing.T) {
	driver := &stubDriver{inputs: []string{"3"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{Fields: []model.Field{{Name: "count", Control: model.ControlNumber}}}
	if _, err := r.Render(context.Background(), form, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.inputValidators) != 1 || driver.inputValidators[0] == nil {
		t.Fatalf("number prompt should carry a validator")
	}

	validate := surveyValidator(driver.inputValidators[0])
	if err := validate("ten"); err == nil {
		t.Fatalf("expected validator to reject a non-number")
	}
	if err := validate(" 2.5 "); err != nil {
		t.Fatalf("unexpected error for a number: %v", err)
	}
	if err := validate(42); err != nil {
		t.Fatalf("non-string answers are formatted before validation: %v", err)
	}
}

func TestRender_HiddenControlsAreNotPrompted(t *testing.T) {
	driver := &stubDriver{textAreas: []string{"hello <b>world</b>"}}
	r, err := New(
		WithPromptDriver(driver),
		WithSanitizer(render.StrictSanitizer()),
		WithOutputFormat(render.FormatTemplate),
		WithTemplate(`{{ values.id }}:{{ values.bio }}`),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{Fields: []model.Field{
		{Name: "id", Control: model.ControlHidden, Default: "42"},
		{Name: "bio", Control: model.ControlTextArea},
	}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "42:hello world" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRender_SubmitTransformerAndObserver(t *testing.T) {
	var bound []string
	observer := fieldref.ObserverFuncs{
		OnBound: func(name string, kind fieldref.Kind) {
			bound = append(bound, name+":"+kind.String())
		},
	}
	driver := &stubDriver{inputs: []string{"ada"}}
	r, err := New(
		WithPromptDriver(driver),
		WithObserver(observer),
		WithSubmitTransformer(func(p fieldref.Pairs) (fieldref.Pairs, error) {
			return append(p, fieldref.Pair{Name: "source", Value: "tui"}), nil
		}),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := model.FormModel{Fields: []model.Field{{Name: "name"}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"name":"ada","source":"tui"}` {
		t.Fatalf("unexpected payload %s", out)
	}
	if diff := cmp.Diff([]string{"name:single"}, bound); diff != "" {
		t.Fatalf("observer mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_AbortAndCancel(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := model.FormModel{Fields: []model.Field{{Name: "name"}}}

	if _, err := r.Render(context.Background(), form, render.RenderOptions{}); err == nil {
		t.Fatalf("expected driver error to propagate")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, form, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRender_PrefillUnknownOption(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := testsupport.MustForm(t, testsupport.LoginForm, "login")
	_, err = r.Render(context.Background(), form, render.RenderOptions{Values: map[string]string{"age": "ancient"}})
	if err == nil || !strings.Contains(err.Error(), "prefill") {
		t.Fatalf("expected prefill error, got %v", err)
	}
}
