package check

import "github.com/joshuapare/apfskit/internal/format"

// Dstream tracks how many bytes the extent records have mapped for one
// data stream. Inodes reference their stream through the private id; the
// deferred inode check compares this size against the declared one.
type Dstream struct {
	ID   uint64
	Size uint64 // bytes accounted by extent records during the walk
}

func newDstream(id uint64) *Dstream {
	return &Dstream{ID: id}
}

// Dstream returns the stream for privateID, creating it on first
// reference. Lookups always resolve: a stream with no extent records
// simply has size zero.
func (s *Session) Dstream(privateID uint64) *Dstream {
	return s.dstreams.GetOrCreate(privateID)
}

// NoteExtent accounts bytes of mapped data to the stream identified by
// privateID. The walker calls this once per file extent record.
func (s *Session) NoteExtent(privateID, bytes uint64) {
	s.Dstream(privateID).Size += bytes
}

// ParseExtentRecord decodes a file extent record value and feeds the
// mapped length into the stream identified by the key's object id.
func (s *Session) ParseExtentRecord(privateID uint64, value []byte) error {
	if len(value) < format.ExtentValSize {
		return reportf("Extent record", "value is too small.")
	}
	lenAndFlags := format.ReadU64(value, format.ExtentLenOffset)
	s.NoteExtent(privateID, lenAndFlags&format.ExtentLenMask)
	return nil
}
