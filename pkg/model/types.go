package model

import internalmodel "github.com/goliatone/go-formrefs/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
	FieldTypeArray   = internalmodel.FieldTypeArray
	FieldTypeObject  = internalmodel.FieldTypeObject
)

// ControlKind re-exports the internal ControlKind enumeration.
type ControlKind = internalmodel.ControlKind

const (
	ControlText     = internalmodel.ControlText
	ControlPassword = internalmodel.ControlPassword
	ControlEmail    = internalmodel.ControlEmail
	ControlNumber   = internalmodel.ControlNumber
	ControlTextArea = internalmodel.ControlTextArea
	ControlSelect   = internalmodel.ControlSelect
	ControlRadio    = internalmodel.ControlRadio
	ControlCheckbox = internalmodel.ControlCheckbox
	ControlHidden   = internalmodel.ControlHidden
)

// ParseControlKind normalises a raw control name.
func ParseControlKind(raw string) (ControlKind, bool) {
	return internalmodel.ParseControlKind(raw)
}

type Option = internalmodel.Option
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
