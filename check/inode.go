package check

import (
	"bytes"

	"github.com/joshuapare/apfskit/internal/buf"
	"github.com/joshuapare/apfskit/internal/format"
)

// Inode accumulates the two views the checker reconciles: the metadata
// declared by the inode record, and the facts observed while walking the
// rest of the catalog. The declared side is filled by ParseInodeRecord,
// the observed side by NoteDentry/NoteExtent; the comparison runs in the
// deferred check at teardown.
type Inode struct {
	Ino       uint64
	Seen      bool // an inode record named this ino
	PrivateID uint64
	Mode      uint16 // type bits may be set by a dentry before the record arrives
	Name      string // primary name xfield, NFD-normalized

	DeclNlink    uint32 // declared link count (non-directories)
	DeclChildren uint32 // declared child count (directories)
	Size         uint64 // declared size, from the dstream xfield

	LinkCount  uint64 // dentries observed pointing at this inode
	ChildCount uint64 // entries observed under this directory
}

func newInode(id uint64) *Inode {
	return &Inode{Ino: id}
}

// checkInodeIDs validates an inode number against its declared parent.
// Ids below the user range are either the virtual directories, whose
// parent must be the root-parent sentinel, or illegal.
func checkInodeIDs(ino, parentIno uint64) error {
	if ino < format.MinUserIno {
		switch ino {
		case format.InvalidIno, format.RootDirParent:
			return reportf("Inode record", "invalid inode number.")
		case format.RootDirIno, format.PrivDirIno, format.SnapDirIno:
			if parentIno != format.RootDirParent {
				return reportf("Root inode record", "bad parent id")
			}
			return nil
		default:
			return reportf("Inode record", "reserved inode number.")
		}
	}

	if parentIno < format.MinUserIno {
		switch parentIno {
		case format.InvalidIno:
			return reportf("Inode record", "invalid parent inode number.")
		case format.RootDirParent:
			return reportf("Inode record", "root parent id for nonroot.")
		case format.RootDirIno, format.PrivDirIno, format.SnapDirIno:
			// Children of the virtual directories are fine.
		default:
			return reportf("Inode record", "reserved parent inode number.")
		}
	}
	return nil
}

// ParseInodeRecord parses an inode record value and checks it for
// corruption. ino is the object id carried by the record key, whose
// internal consistency must have been checked already.
func (s *Session) ParseInodeRecord(ino uint64, value []byte) error {
	val, err := format.DecodeInodeValue(value)
	if err != nil {
		return reportf("Inode record", "value is too small.")
	}

	inode := s.Inode(ino)
	if inode.Seen {
		return reportf("Catalog", "inode numbers are repeated.")
	}
	inode.Seen = true
	inode.PrivateID = val.PrivateID

	if err := checkInodeIDs(ino, val.ParentID); err != nil {
		return err
	}

	// A dentry may have already set the mode, but only the type bits.
	filetype := val.FileType()
	if inode.Mode != 0 && inode.Mode&format.ModeTypeMask != filetype {
		return reportf("Inode record", "file mode doesn't match dentry type.")
	}
	inode.Mode = val.Mode

	switch filetype {
	case format.ModeRegular:
		s.FileCount++
		inode.DeclNlink = uint32(val.NlinkRaw)
	case format.ModeDirectory:
		if ino >= format.MinUserIno {
			s.DirCount++
		}
		// The on-disk field is a union: child count for directories.
		inode.DeclChildren = uint32(val.NlinkRaw)
	case format.ModeSymlink:
		s.SymlinkCount++
		inode.DeclNlink = uint32(val.NlinkRaw)
	case format.ModeSocket, format.ModeBlockDev, format.ModeCharDev, format.ModeFIFO:
		s.SpecialCount++
		inode.DeclNlink = uint32(val.NlinkRaw)
	default:
		return reportf("Inode record", "invalid file mode.")
	}

	if val.Pad1 != 0 || val.Pad2 != 0 {
		return reportf("Inode record", "padding should be zeroes.")
	}

	return s.parseInodeXFields(value[format.InoValSize:], inode)
}

// parseInodeXFields parses and checks an inode's extended fields. blob is
// the residual record value past the fixed header; it must be consumed
// exactly, with zero slack.
func (s *Session) parseInodeXFields(blob []byte, inode *Inode) error {
	if len(blob) == 0 {
		// No extended fields.
		return nil
	}

	rem := len(blob) - format.XFBlobHeaderSize
	if rem < 0 {
		return reportf("Inode record", "no room for extended fields.")
	}
	hdr, err := format.DecodeXFBlobHeader(blob)
	if err != nil {
		return reportf("Inode record", "no room for extended fields.")
	}

	xcount := int(hdr.NumExts)
	descEnd, err := buf.CheckArrayBounds(len(blob), format.XFBlobHeaderSize, xcount, format.XFieldDescSize)
	if err != nil {
		return reportf("Inode record", "number of xfields cannot fit.")
	}
	rem -= xcount * format.XFieldDescSize

	if int(hdr.UsedData) != rem {
		return reportf("Inode record", "value size incompatible with xfields.")
	}

	// Payload cursor; xval+rem == len(blob) holds throughout.
	xval := descEnd
	for i := 0; i < xcount; i++ {
		xf := format.DecodeXField(blob, format.XFBlobHeaderSize, i)

		var xlen int
		switch xf.Type {
		case format.XTypeFSUUID:
			xlen = format.UUIDSize
		case format.XTypeSnapXID, format.XTypeDeltaTreeOID, format.XTypePrevFsize, format.XTypeSparseBytes:
			xlen = 8
		case format.XTypeDocumentID, format.XTypeFinderInfo, format.XTypeRdev:
			xlen = 4
		case format.XTypeName:
			if rem <= 0 {
				return reportf("Inode xfield", "does not fit in record value.")
			}
			nul := bytes.IndexByte(blob[xval:], 0)
			if nul < 0 {
				return reportf("Inode xfield", "name with no null termination")
			}
			if err := inode.setName(blob[xval : xval+nul]); err != nil {
				return err
			}
			xlen = nul + 1
		case format.XTypeDstream:
			if rem < format.DstreamSize {
				return reportf("Dstream xfield", "doesn't fit in inode record.")
			}
			inode.Size = format.ReadU64(blob, xval+format.DstreamSizeOffset)
			xlen = format.DstreamSize
		case format.XTypeDirStatsKey:
			xlen = format.DirStatsSize
		case format.XTypeReserved6, format.XTypeReserved9, format.XTypeReserved12:
			return reportf("Inode xfield", "reserved type in use.")
		default:
			return reportf("Inode xfield", "invalid type.")
		}

		if xlen != int(xf.Size) {
			return reportf("Inode xfield", "wrong size")
		}
		rem -= xlen
		xval += xlen

		// Payloads are padded with zeroes to a multiple of 8.
		pad := format.Pad8(xlen)
		rem -= pad
		if rem < 0 {
			return reportf("Inode xfield", "does not fit in record value.")
		}
		for ; pad > 0; pad-- {
			if blob[xval] != 0 {
				return reportf("Inode xfield", "non-zero padding.")
			}
			xval++
		}
	}

	if rem != 0 {
		return reportf("Inode record", "length of xfields does not add up.")
	}
	return nil
}

// checkInodeStats verifies the stats gathered during the walk against the
// declared metadata. Valid only once the whole catalog has been consumed;
// Session.Finish runs it for every inode at teardown.
func (s *Session) checkInodeStats(inode *Inode) error {
	// Teardown order contract: the dstream table outlives the inode table.
	if s.dstreams == nil {
		panic("check: inode table torn down after the dstream table")
	}

	// Dentries or extents referenced this ino but no inode record did.
	if !inode.Seen {
		return reportf("Catalog", "orphaned or missing inode.")
	}

	if inode.Mode&format.ModeTypeMask == format.ModeDirectory {
		if inode.LinkCount != 1 {
			return reportf("Inode record", "directory has hard links.")
		}
		if uint64(inode.DeclChildren) != inode.ChildCount {
			return reportf("Inode record", "wrong directory child count.")
		}
	} else {
		if uint64(inode.DeclNlink) != inode.LinkCount {
			return reportf("Inode record", "wrong link count.")
		}
	}

	if s.Dstream(inode.PrivateID).Size < inode.Size {
		return reportf("Inode record", "some extents are missing.")
	}
	return nil
}
