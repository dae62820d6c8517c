package blob

import "fmt"

// InvalidStructureError covers any ChunkedBlobNode/ChunkLeaf shape
// defect that does not have a more specific error type of its own.
type InvalidStructureError struct {
	Reason string
}

func (e *InvalidStructureError) Error() string {
	return fmt.Sprintf("blob: invalid structure: %s", e.Reason)
}

// InvalidVersionError is returned when a ChunkedBlobNode header's
// version field is not Version.
type InvalidVersionError struct {
	Version uint64
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("blob: version must be %d, got %d", Version, e.Version)
}

// InvalidKindError reports a ChunkedBlobNode header whose kind field
// does not match what the caller expected to validate. ParseNode and
// ValidateChunkLeaf never return it: they do not check kind, and routing
// on NodeHeader.Kind is left to the caller.
type InvalidKindError struct {
	Kind uint64
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("blob: kind must be %d (ChunkLeaf), got %d", KindChunkLeaf, e.Kind)
}

// InvalidHashLengthError is returned when a chunk's hash digest is not
// 32 bytes.
type InvalidHashLengthError struct {
	Length int
}

func (e *InvalidHashLengthError) Error() string {
	return fmt.Sprintf("blob: hash must be 32 bytes, got %d", e.Length)
}
