package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	iface "csvdoc/pkg/api/storage"
)

const defaultFileMode fs.FileMode = 0o644

type osFileSystem struct{}

var _ iface.FileSystem = (*osFileSystem)(nil)

// NewOSFileSystem returns a FileSystem backed by the local disk.
// Writes go to a temporary file in the target directory that is renamed over
// the target, so readers never observe a half-written file.
func NewOSFileSystem() iface.FileSystem {
	return osFileSystem{}
}

// ReadFile implements storage.FileSystem.
func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile implements storage.FileSystem.
func (osFileSystem) WriteFile(path string, data []byte) (err error) {
	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		if !info.Mode().IsRegular() {
			return &fs.PathError{Op: "write", Path: path, Err: errors.New("not a regular file")}
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
