package storage

import (
	"fmt"
	"strings"

	iface "csvdoc/pkg/api/storage"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type encodedFileSystem struct {
	base iface.FileSystem
	enc  encoding.Encoding
}

var _ iface.FileSystem = (*encodedFileSystem)(nil)

// NewEncodedFileSystem wraps base so that files are decoded from enc to UTF-8
// on read and encoded back to enc on write.
func NewEncodedFileSystem(base iface.FileSystem, enc encoding.Encoding) (iface.FileSystem, error) {
	if base == nil {
		return nil, errNilFileSystem
	}
	if enc == nil {
		return nil, errNilEncoding
	}
	return &encodedFileSystem{base: base, enc: enc}, nil
}

// ReadFile implements storage.FileSystem.
func (e *encodedFileSystem) ReadFile(path string) ([]byte, error) {
	raw, err := e.base.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoded, _, err := transform.Bytes(e.enc.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return decoded, nil
}

// WriteFile implements storage.FileSystem.
func (e *encodedFileSystem) WriteFile(path string, data []byte) error {
	encoded, _, err := transform.Bytes(e.enc.NewEncoder(), data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return e.base.WriteFile(path, encoded)
}

// LookupEncoding resolves an IANA charset name such as "windows-1252" or
// "ISO-8859-1". An empty name and UTF-8 resolve to nil, meaning no
// transcoding, so invalid UTF-8 bytes pass through unchanged.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedEncoding, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}
