package format

import "fmt"

// KeyHeader is the 64-bit word at the start of every catalog key, packing
// the object id and the record type.
type KeyHeader struct {
	ObjID uint64
	Type  uint8
}

// DecodeKeyHeader decodes the key header at the start of b.
func DecodeKeyHeader(b []byte) (KeyHeader, error) {
	raw, err := CheckedReadU64(b, 0)
	if err != nil {
		return KeyHeader{}, fmt.Errorf("catalog key: %w", err)
	}
	return KeyHeader{
		ObjID: raw & ObjIDMask,
		Type:  uint8(raw >> ObjTypeShift),
	}, nil
}

// PackKeyHeader is the inverse of DecodeKeyHeader; test fixtures use it to
// build raw keys.
func PackKeyHeader(objID uint64, recType uint8) uint64 {
	return objID&ObjIDMask | uint64(recType)<<ObjTypeShift
}
