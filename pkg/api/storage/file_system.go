package storage

// FileSystem is the whole-file collaborator a document is loaded from and
// written to. Implementations are not required to stream.
type FileSystem interface {
	// ReadFile returns the complete content of the file at path.
	// A missing file must be reported with an error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path with data.
	WriteFile(path string, data []byte) error
}
