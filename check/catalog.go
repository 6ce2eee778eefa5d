package check

import (
	"github.com/joshuapare/apfskit/internal/buf"
	"github.com/joshuapare/apfskit/internal/format"
)

// WalkDump feeds a flat catalog record dump to the session, one record at
// a time, in tree order. The dump is a little-endian stream of records:
//
//	Offset  Size  Field
//	0x00    4     Key length
//	0x04    4     Value length
//	0x08    k     Key bytes
//	0x08+k  v     Value bytes
//
// Inode records are parsed in full; directory entry and file extent
// records are decoded just far enough to feed the walk-observed facts
// into the session. The caller still runs Session.Finish afterwards for
// the deferred checks.
func WalkDump(s *Session, data []byte) error {
	off := 0
	for off < len(data) {
		if len(data)-off < 8 {
			return reportf("Catalog", "truncated record header.")
		}
		klen := int(format.ReadU32(data, off))
		vlen := int(format.ReadU32(data, off+4))
		off += 8

		key, ok := buf.Slice(data, off, klen)
		if !ok {
			return reportf("Catalog", "truncated record key.")
		}
		value, ok := buf.Slice(data, off+klen, vlen)
		if !ok {
			return reportf("Catalog", "truncated record value.")
		}
		off += klen + vlen

		hdr, err := format.DecodeKeyHeader(key)
		if err != nil {
			return reportf("Catalog", "key is too small.")
		}

		switch hdr.Type {
		case format.RecTypeInode:
			err = s.ParseInodeRecord(hdr.ObjID, value)
			if err == nil && hdr.ObjID < format.MinUserIno {
				// The virtual directories are linked by the volume
				// itself, not by a dentry.
				s.Inode(hdr.ObjID).LinkCount++
			}
		case format.RecTypeDirRec:
			err = s.ParseDentryRecord(hdr.ObjID, value)
		case format.RecTypeFileExtent:
			err = s.ParseExtentRecord(hdr.ObjID, value)
		default:
			err = reportf("Catalog", "invalid record type.")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
