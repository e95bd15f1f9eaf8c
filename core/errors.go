package core

// FieldError pins a validation failure to one named field. Field should carry
// the JSON name the client sent, not the Go name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports business-rule validation failures that struct tags
// cannot express, either as a general error or per-field.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
