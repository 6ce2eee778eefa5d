//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.bin")
	want := []byte("catalog dump contents")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if string(data) != string(want) {
		t.Fatalf("mapped contents mismatch: %q", data)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("second cleanup should be a no-op: %v", err)
	}
}

func TestMapEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(data))
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestMapMissingFile(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
