package storage

import "errors"

var (
	// ErrUnsupportedEncoding is returned by LookupEncoding for names x/text knows no codec for.
	ErrUnsupportedEncoding = errors.New("storage: unsupported encoding")

	errNilFileSystem = errors.New("storage: file system cannot be nil")
	errNilEncoding   = errors.New("storage: encoding cannot be nil")
)
