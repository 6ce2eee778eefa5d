package format

import "fmt"

// InodeValue captures the fixed header of an inode record value. The
// extended-field blob, when present, follows the header and is handled
// separately by the checker.
type InodeValue struct {
	ParentID      uint64
	PrivateID     uint64
	InternalFlags uint64
	NlinkRaw      int32 // link count, or child count for directories
	BSDFlags      uint32
	Owner         uint32
	Group         uint32
	Mode          uint16
	Pad1          uint16
	Pad2          uint64
}

// FileType returns the type bits of the declared mode.
func (v InodeValue) FileType() uint16 {
	return v.Mode & ModeTypeMask
}

// DecodeInodeValue decodes the fixed inode value header.
func DecodeInodeValue(b []byte) (InodeValue, error) {
	if len(b) < InoValSize {
		return InodeValue{}, fmt.Errorf("inode value: %w (have %d, need %d)", ErrTruncated, len(b), InoValSize)
	}
	return InodeValue{
		ParentID:      ReadU64(b, InoParentIDOffset),
		PrivateID:     ReadU64(b, InoPrivateIDOffset),
		InternalFlags: ReadU64(b, InoIntFlagsOffset),
		NlinkRaw:      ReadI32(b, InoNlinkOffset),
		BSDFlags:      ReadU32(b, InoBSDFlagsOffset),
		Owner:         ReadU32(b, InoOwnerOffset),
		Group:         ReadU32(b, InoGroupOffset),
		Mode:          ReadU16(b, InoModeOffset),
		Pad1:          ReadU16(b, InoPad1Offset),
		Pad2:          ReadU64(b, InoPad2Offset),
	}, nil
}
