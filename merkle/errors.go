package merkle

import "fmt"

// InvalidStructureError covers any MerkleNode/MerkleListLeaf shape
// defect that does not have a more specific error type of its own.
type InvalidStructureError struct {
	Reason string
}

func (e *InvalidStructureError) Error() string {
	return fmt.Sprintf("merkle: invalid structure: %s", e.Reason)
}

// InvalidVersionError is returned when a MerkleNode header's version
// field is not Version.
type InvalidVersionError struct {
	Version uint64
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("merkle: version must be %d, got %d", Version, e.Version)
}

// InvalidKindError reports a MerkleNode header whose kind field does not
// match what the caller expected to validate. ParseNode and
// ValidateListLeaf never return it: they do not check kind, and routing
// on NodeHeader.Kind is left to the caller.
type InvalidKindError struct {
	Kind uint64
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("merkle: kind must be %d (MerkleListLeaf), got %d", KindMerkleListLeaf, e.Kind)
}

// InvalidHashAlgError is returned when a Hash struct embedded in a
// MerkleListLeaf names an algorithm other than SHA-256.
type InvalidHashAlgError struct {
	Alg uint64
}

func (e *InvalidHashAlgError) Error() string {
	return fmt.Sprintf("merkle: hash algorithm must be 1 (SHA-256), got %d", e.Alg)
}

// InvalidHashLengthError is returned when a Hash struct's digest is not
// 32 bytes.
type InvalidHashLengthError struct {
	Length int
}

func (e *InvalidHashLengthError) Error() string {
	return fmt.Sprintf("merkle: hash bytes must be 32, got %d", e.Length)
}

// InvalidListLengthError is returned when a MerkleListLeaf's value list
// is empty or exceeds FANOUT.
type InvalidListLengthError struct {
	Length int
}

func (e *InvalidListLengthError) Error() string {
	return fmt.Sprintf("merkle: list must contain 1 to %d items, got %d", FANOUT, e.Length)
}
