package format

import "testing"

func TestDecodeXFBlobHeader(t *testing.T) {
	b := make([]byte, XFBlobHeaderSize)
	PutU16(b, XFBlobNumExtsOffset, 2)
	PutU16(b, XFBlobUsedDataOffset, 48)

	hdr, err := DecodeXFBlobHeader(b)
	if err != nil {
		t.Fatalf("DecodeXFBlobHeader: %v", err)
	}
	if hdr.NumExts != 2 || hdr.UsedData != 48 {
		t.Fatalf("unexpected header: %+v", hdr)
	}
}

func TestDecodeXFBlobHeaderTruncated(t *testing.T) {
	if _, err := DecodeXFBlobHeader([]byte{1}); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestDecodeXField(t *testing.T) {
	b := make([]byte, XFBlobHeaderSize+2*XFieldDescSize)
	b[XFBlobHeaderSize+XFieldTypeOffset] = XTypeName
	PutU16(b, XFBlobHeaderSize+XFieldSizeOffset, 12)
	b[XFBlobHeaderSize+XFieldDescSize+XFieldTypeOffset] = XTypeDstream
	PutU16(b, XFBlobHeaderSize+XFieldDescSize+XFieldSizeOffset, DstreamSize)

	first := DecodeXField(b, XFBlobHeaderSize, 0)
	if first.Type != XTypeName || first.Size != 12 {
		t.Fatalf("unexpected first descriptor: %+v", first)
	}
	second := DecodeXField(b, XFBlobHeaderSize, 1)
	if second.Type != XTypeDstream || second.Size != DstreamSize {
		t.Fatalf("unexpected second descriptor: %+v", second)
	}
}
