package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/apfskit/internal/format"
)

func TestDstreamRepeatedLookupSameEntity(t *testing.T) {
	sess := NewSession()

	first := sess.Dstream(0x5000)
	second := sess.Dstream(0x5000)
	require.Same(t, first, second)
	require.Equal(t, uint64(0), first.Size)
}

func TestNoteExtentAccumulates(t *testing.T) {
	sess := NewSession()

	sess.NoteExtent(0x5000, 4096)
	sess.NoteExtent(0x5000, 8192)
	sess.NoteExtent(0x6000, 100)

	require.Equal(t, uint64(12288), sess.Dstream(0x5000).Size)
	require.Equal(t, uint64(100), sess.Dstream(0x6000).Size)
}

func TestParseExtentRecord(t *testing.T) {
	sess := NewSession()

	value := make([]byte, format.ExtentValSize)
	// Length in the low 56 bits, flags in the top byte.
	format.PutU64(value, format.ExtentLenOffset, 0x0100_0000_0000_2000)
	format.PutU64(value, format.ExtentPhysBlkOffset, 777)

	require.NoError(t, sess.ParseExtentRecord(0x5000, value))
	require.Equal(t, uint64(0x2000), sess.Dstream(0x5000).Size)
}

func TestParseExtentRecordTooSmall(t *testing.T) {
	sess := NewSession()
	err := sess.ParseExtentRecord(0x5000, make([]byte, format.ExtentValSize-1))
	require.EqualError(t, err, "Extent record: value is too small.")
}
