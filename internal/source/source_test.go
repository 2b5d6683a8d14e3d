package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"

	"wordfreq/internal/testsupport"
)

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, _, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}
	rc, size, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	rc.Close()
	if size != int64(len("hello world")) {
		t.Fatalf("unexpected size %d", size)
	}
	if got := readAll(t, path); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestOpenGzip(t *testing.T) {
	path := testsupport.WriteGzip(t, filepath.Join(t.TempDir(), "text.GZ"), "compressed words")
	if got := readAll(t, path); got != "compressed words" {
		t.Fatalf("got %q", got)
	}
}

func TestOpenXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	xw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte("xz words")); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, path); got != "xz words" {
		t.Fatalf("got %q", got)
	}
}

func TestOpenCorruptGzipFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	if err := os.WriteFile(path, []byte("not gzip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(path); err == nil {
		t.Fatal("expected header error")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error")
	}
}
