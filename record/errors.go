package record

import (
	"fmt"

	"mythos.dev/can/value"
)

// NotAMapError is returned when a record-shaped operation is given a
// Value whose Kind is not Map.
type NotAMapError struct {
	Kind value.Kind
}

func (e *NotAMapError) Error() string {
	return fmt.Sprintf("record: expected a map, got %s", e.Kind)
}

// MissingFieldError is returned when a record is missing a field an ID
// recipe expects to find before it excludes it, a defensive drift check
// rather than a normal validation failure.
type MissingFieldError struct {
	Field uint64
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record: missing expected field %d", e.Field)
}
