package check

import "github.com/joshuapare/apfskit/internal/format"

// Session owns all state of one catalog check: the three id-keyed tables
// and the running per-type object tallies. It is exclusively owned and
// mutated by the single checking goroutine; every parsing entry point
// takes it explicitly.
type Session struct {
	inodes   *Table[*Inode]
	dstreams *Table[*Dstream]
	cnids    *Table[*ListedCnid]

	// Object tallies, incremented as inode records are parsed.
	FileCount    uint64
	DirCount     uint64
	SymlinkCount uint64
	SpecialCount uint64
}

// NewSession returns a session with empty tables, ready to consume
// records.
func NewSession() *Session {
	return &Session{
		inodes:   NewTable(newInode),
		dstreams: NewTable(newDstream),
		cnids:    NewTable(newListedCnid),
	}
}

// Inode returns the inode for ino, creating it on first reference. Any
// record type may create the inode; the inode record itself must still
// arrive exactly once.
func (s *Session) Inode(ino uint64) *Inode {
	return s.inodes.GetOrCreate(ino)
}

// NoteDentry records one observed directory entry: parent gains a child,
// child gains a link, and the entry's file type is remembered on the
// child so the inode record can be checked against it. dtype is the
// 4-bit dirent type from the entry's flags.
func (s *Session) NoteDentry(parent, child uint64, dtype uint8) error {
	s.ListCnid(child)

	s.Inode(parent).ChildCount++

	inode := s.Inode(child)
	inode.LinkCount++

	filetype := uint16(dtype) << format.DrecTypeModeShift
	if inode.Mode != 0 && inode.Mode&format.ModeTypeMask != filetype {
		return reportf("Dentry record", "file mode doesn't match dentry type.")
	}
	if inode.Mode == 0 {
		// Only the type bits are known until the inode record arrives.
		inode.Mode = filetype
	}
	return nil
}

// ParseDentryRecord decodes a directory entry record value and feeds the
// observation into the session. parent is the object id from the key.
func (s *Session) ParseDentryRecord(parent uint64, value []byte) error {
	if len(value) < format.DrecValSize {
		return reportf("Dentry record", "value is too small.")
	}
	child := format.ReadU64(value, format.DrecChildIDOffset)
	flags := format.ReadU16(value, format.DrecFlagsOffset)
	return s.NoteDentry(parent, child, uint8(flags&format.DrecTypeMask))
}

// Finish tears the session down, running the deferred whole-table checks
// in the contractual order: the inode table first, while the dstream
// table is still live for its size lookups, then the dstreams, then the
// cnid registry. The first violation is returned and the remaining
// entities are released unchecked.
func (s *Session) Finish() error {
	err := s.inodes.Drop(func(_ uint64, inode *Inode) error {
		return s.checkInodeStats(inode)
	})
	s.inodes = nil
	if err != nil {
		return err
	}
	if err := s.dstreams.Drop(nil); err != nil {
		return err
	}
	s.dstreams = nil
	return s.cnids.Drop(nil)
}
