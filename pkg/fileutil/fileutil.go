// Package fileutil provides a small afero-backed filesystem abstraction so
// file output can be redirected to an in-memory filesystem in tests.
package fileutil

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Standard file permission constants
const (
	// ReadWriteUserPermission represents read/write permissions for the file owner only (0600 in octal)
	ReadWriteUserPermission = 0o600
	// ReadWriteUserReadOthers represents read/write for owner, read for others (0644 in octal)
	ReadWriteUserReadOthers = 0o644
)

// File represents an open file in the filesystem.
type File interface {
	io.Closer
	io.Reader
	io.Writer
	Name() string
	Stat() (os.FileInfo, error)
}

// FS defines the filesystem operations chartpick needs.
type FS interface {
	Create(name string) (File, error)
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}

// AferoFS adapts an afero.Fs to the FS interface.
type AferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates an AferoFS wrapping the provided afero.Fs. A nil fs
// falls back to the real OS filesystem.
func NewAferoFS(fs afero.Fs) *AferoFS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &AferoFS{fs: fs}
}

// Create creates or truncates the named file.
func (a *AferoFS) Create(name string) (File, error) {
	return a.fs.Create(name)
}

// Open opens the named file for reading.
func (a *AferoFS) Open(name string) (File, error) {
	return a.fs.Open(name)
}

// Stat returns file info for the named file.
func (a *AferoFS) Stat(name string) (os.FileInfo, error) {
	return a.fs.Stat(name)
}

// MkdirAll creates the named directory and any missing parents.
func (a *AferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// ReadFile reads the named file and returns its contents.
func (a *AferoFS) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(a.fs, filename)
}

// WriteFile writes data to the named file, creating it if necessary.
func (a *AferoFS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, filename, data, perm)
}

// GetUnderlyingFs returns the wrapped afero.Fs.
func (a *AferoFS) GetUnderlyingFs() afero.Fs {
	return a.fs
}

// defaultFS is the package-level filesystem used by the helper functions.
var defaultFS FS = NewAferoFS(afero.NewOsFs())

// SetFS replaces the package-level filesystem and returns a function to
// restore it. This is primarily used for testing.
func SetFS(fs FS) func() {
	oldFS := defaultFS
	defaultFS = fs
	return func() { defaultFS = oldFS }
}

// FileExists checks whether path exists and is not a directory.
func FileExists(path string) (bool, error) {
	info, err := defaultFS.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads the named file through the package-level filesystem.
func ReadFile(path string) ([]byte, error) {
	return defaultFS.ReadFile(path)
}

// WriteFile writes data to the named file through the package-level filesystem.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return defaultFS.WriteFile(path, data, perm)
}
