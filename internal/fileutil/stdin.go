package fileutil

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

const maxStdinSize = 10 * 1024 * 1024

// OpenFileOrStdin returns a reader over path, or over stdin when path is "-".
// Closing the reader never closes stdin.
func OpenFileOrStdin(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	return OpenSecureFile(path)
}

// ReadStdin reads all of stdin, up to 10MB. Empty input is an error.
func ReadStdin() ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxStdinSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	if len(data) > maxStdinSize {
		return nil, fmt.Errorf("stdin input exceeds maximum size of %d bytes", maxStdinSize)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty")
	}
	return data, nil
}

// ReadFileOrStdin reads path, or stdin when path is "-".
func ReadFileOrStdin(path string) ([]byte, error) {
	if path == StdinPath {
		return ReadStdin()
	}
	return ReadSecureFile(path)
}
