package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials is returned for unknown email, wrong password
	// and inactive accounts alike, so a caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInvalidOTP is returned when no active code matches the attempt.
	ErrInvalidOTP = errors.New("invalid or expired OTP")
)

// FieldErrors carries per-field validation failures, reported to the caller
// keyed by the offending payload field.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		fmt.Fprintf(&b, " %s: %s;", f, strings.Join(e[f], ", "))
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Add appends a message for a field.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// NewFieldError builds a FieldErrors holding a single message.
func NewFieldError(field, msg string) FieldErrors {
	fe := FieldErrors{}
	fe.Add(field, msg)
	return fe
}

// AsFieldErrors unwraps err into FieldErrors when it is one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
