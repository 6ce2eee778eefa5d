package format

import "testing"

func TestKeyHeaderRoundTrip(t *testing.T) {
	b := make([]byte, KeyHeaderSize)
	PutU64(b, 0, PackKeyHeader(0x123456, RecTypeInode))

	hdr, err := DecodeKeyHeader(b)
	if err != nil {
		t.Fatalf("DecodeKeyHeader: %v", err)
	}
	if hdr.ObjID != 0x123456 || hdr.Type != RecTypeInode {
		t.Fatalf("unexpected header: %+v", hdr)
	}
}

func TestKeyHeaderMasksHighBits(t *testing.T) {
	b := make([]byte, KeyHeaderSize)
	PutU64(b, 0, ^uint64(0))

	hdr, err := DecodeKeyHeader(b)
	if err != nil {
		t.Fatalf("DecodeKeyHeader: %v", err)
	}
	if hdr.ObjID != ObjIDMask || hdr.Type != 0xF {
		t.Fatalf("unexpected header: %+v", hdr)
	}
}

func TestDecodeKeyHeaderTruncated(t *testing.T) {
	if _, err := DecodeKeyHeader(make([]byte, KeyHeaderSize-1)); err == nil {
		t.Fatalf("expected truncation error")
	}
}
