package format

import "fmt"

// XFBlob is the header of an inode's extended-field blob.
type XFBlob struct {
	NumExts  uint16 // number of field descriptors
	UsedData uint16 // payload bytes, descriptor array excluded
}

// DecodeXFBlobHeader decodes the blob header at the start of b.
func DecodeXFBlobHeader(b []byte) (XFBlob, error) {
	if len(b) < XFBlobHeaderSize {
		return XFBlob{}, fmt.Errorf("xfield blob: %w (have %d, need %d)", ErrTruncated, len(b), XFBlobHeaderSize)
	}
	return XFBlob{
		NumExts:  ReadU16(b, XFBlobNumExtsOffset),
		UsedData: ReadU16(b, XFBlobUsedDataOffset),
	}, nil
}

// XField is one entry of the extended-field descriptor array.
type XField struct {
	Type  uint8
	Flags uint8
	Size  uint16 // declared payload size, padding excluded
}

// DecodeXField decodes the i-th descriptor of the array starting at off
// within b. The caller must have bounds-checked the whole array.
func DecodeXField(b []byte, off, i int) XField {
	base := off + i*XFieldDescSize
	return XField{
		Type:  b[base+XFieldTypeOffset],
		Flags: b[base+XFieldFlagsOffset],
		Size:  ReadU16(b, base+XFieldSizeOffset),
	}
}
