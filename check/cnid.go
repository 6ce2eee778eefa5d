package check

// ListedCnid marks a catalog object id as having been listed somewhere in
// the tree. Its only fact is its existence in the registry; there is no
// deferred state to verify at teardown.
type ListedCnid struct {
	ID uint64
}

func newListedCnid(id uint64) *ListedCnid {
	return &ListedCnid{ID: id}
}

// ListCnid records that id was listed and returns its registry entry.
func (s *Session) ListCnid(id uint64) *ListedCnid {
	return s.cnids.GetOrCreate(id)
}
