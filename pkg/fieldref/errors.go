package fieldref

import (
	"errors"
	"fmt"
)

// ErrUnbound matches every *UnboundFieldError via errors.Is.
var ErrUnbound = errors.New("fieldref: field is not bound")

// UnboundFieldError is returned by read operations that target a field whose
// entry is still Unset. Reading before the host mounted the control is a
// sequencing bug in the caller, so the error is never retried internally.
type UnboundFieldError struct {
	Key string
}

func (e *UnboundFieldError) Error() string {
	return fmt.Sprintf("the reference for field `%s` is not bound.", e.Key)
}

// Is lets errors.Is(err, ErrUnbound) succeed.
func (e *UnboundFieldError) Is(target error) bool {
	return target == ErrUnbound
}

// AssertPresent returns the entry unchanged when it is bound and an
// *UnboundFieldError naming key otherwise.
func AssertPresent(entry Entry, key string) (Entry, error) {
	if !entry.IsSet() {
		return Entry{}, &UnboundFieldError{Key: key}
	}
	return entry, nil
}

// UnboundKey extracts the field name from an unbound error chain.
func UnboundKey(err error) (string, bool) {
	var unbound *UnboundFieldError
	if errors.As(err, &unbound) {
		return unbound.Key, true
	}
	return "", false
}
