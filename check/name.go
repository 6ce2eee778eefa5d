package check

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// setName validates the primary-name xfield payload (the NUL terminator
// excluded) and stores it on the inode. Names are UTF-8; the NFD form is
// kept because normalization-insensitive volumes hash the normalized
// name.
func (inode *Inode) setName(raw []byte) error {
	if !utf8.Valid(raw) {
		return reportf("Inode xfield", "name is not valid UTF-8.")
	}
	name := string(raw)
	if name == "" || name == "." || name == ".." {
		return reportf("Inode xfield", "illegal name.")
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return reportf("Inode xfield", "illegal name.")
		}
	}
	inode.Name = norm.NFD.String(name)
	return nil
}
