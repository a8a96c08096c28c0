package interfaces

import "os"

// FileSystem provides an abstraction over file system operations for testability
type FileSystem interface {
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(dirname string) ([]os.DirEntry, error)
	Remove(name string) error
	IsNotExist(err error) bool
	// Rename atomically replaces newpath with oldpath, the primitive
	// the job package's save job builds its temp-file-then-rename
	// write contract on top of (spec §4.8/§6).
	Rename(oldpath, newpath string) error
	// Stat reports file metadata.
	Stat(name string) (os.FileInfo, error)
	// Fsync flushes name's contents to stable storage, called between
	// WriteFile and Rename so a crash can never leave a truncated file
	// renamed over the target (spec §4.8's "flushes+syncs, then
	// renames").
	Fsync(name string) error
}

// OSFileSystem implements FileSystem using standard os package
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

func (fs *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *OSFileSystem) ReadDir(dirname string) ([]os.DirEntry, error) {
	return os.ReadDir(dirname)
}

func (fs *OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

func (fs *OSFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (fs *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (fs *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *OSFileSystem) Fsync(name string) error {
	f, err := os.OpenFile(name, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
