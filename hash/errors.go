package hash

import "fmt"

// MalformedHashError is returned when a value claiming to be a Hash does
// not have the shape Map{1: uvarint alg, 2: bytes digest}, and by
// AgentIDFromValue when a value is not a well-formed AgentID.
type MalformedHashError struct {
	Reason string
}

func (e *MalformedHashError) Error() string {
	return fmt.Sprintf("hash: malformed hash value: %s", e.Reason)
}
