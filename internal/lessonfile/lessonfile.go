// Package lessonfile appends generated markdown to per-lesson output files.
//
// Each call opens the file in append mode, writes and closes it again, so
// an interrupted run leaves every earlier write on disk.
package lessonfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Ext is the extension of generated lesson files.
const Ext = ".md"

// Path returns the output file for a lesson directory: <outDir>/<basename>.md.
func Path(outDir, lessonDir string) string {
	return filepath.Join(outDir, filepath.Base(lessonDir)+Ext)
}

// Append opens path for appending, creating it if needed, and hands the
// file to write. The file is closed before Append returns, even when write
// fails part way through.
func Append(path string, write func(w io.Writer) error) (err error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	return write(file)
}

// AppendString appends s to path.
func AppendString(path, s string) error {
	return Append(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, s); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
}
