// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Validation errors. They are returned wrapped in a *failure.Error.
var (
	ErrNotObject        = errors.New("value is not a JSON object")
	ErrMissingHomeworks = errors.New(`key "homeworks" is missing from the API response`)
	ErrHomeworksNotList = errors.New(`key "homeworks" is not a list`)
	ErrEmptyHomeworks   = errors.New("homeworks list is empty")
	ErrUnknownStatus    = errors.New("unknown homework status")
)

// MissingKeyError reports a homework entry without a required key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q is missing from the homework entry", e.Key)
}

// InvalidKeyError reports a homework entry key holding a value of the wrong type.
type InvalidKeyError struct {
	Key   string
	Value any
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("key %q has unexpected value %v (%T)", e.Key, e.Value, e.Value)
}
