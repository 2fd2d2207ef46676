package board

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers see either the old file or the new one.
func writeFileAtomic(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("error write %s: %w", path, err)
	}
	// temp files are created 0600
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("error chmod %s: %w", path, err)
	}
	return nil
}
