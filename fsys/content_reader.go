package fsys

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (disk, memory, etc.)
type ContentReader func(filePath string) ([]byte, error)

// FileSystemContentReader returns a ContentReader backed by fsys.
func FileSystemContentReader(fsys FileSystem) ContentReader {
	return fsys.ReadFile
}
