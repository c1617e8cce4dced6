package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// writeTemp stores content in a fresh temp file and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	return path
}

func openTemp(t *testing.T, content string, opts ...Option) *Document {
	t.Helper()

	doc, err := Open(writeTemp(t, content), opts...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = doc.Close() })
	return doc
}

// drain returns the remaining rows of the document cursor as strings.
func drain(doc *Document) [][]string {
	var out [][]string
	for {
		row, ok := doc.Next()
		if !ok {
			return out
		}
		var fields []string
		for f, ok := row.Next(); ok; f, ok = row.Next() {
			fields = append(fields, string(f))
		}
		out = append(out, fields)
	}
}

// memFileSystem is an in-memory storage.FileSystem with injectable failures.
type memFileSystem struct {
	files    map[string][]byte
	readErr  error
	writeErr error
}

func newMemFileSystem(files map[string]string) *memFileSystem {
	m := &memFileSystem{files: make(map[string][]byte)}
	for name, content := range files {
		m.files[name] = []byte(content)
	}
	return m
}

func (m *memFileSystem) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *memFileSystem) WriteFile(path string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

var errDiskFull = errors.New("no space left on device")
