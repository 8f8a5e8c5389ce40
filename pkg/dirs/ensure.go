package dirs

import (
	"fmt"
	"os"
)

// DefaultDirMode is the permission mode for directories created by
// EnsureCreated.
const DefaultDirMode os.FileMode = 0o755

// EnsureCreated creates every directory in d that does not exist yet,
// including missing parents, and succeeds when all of them already
// exist. It stops at the first failure without removing directories
// created before it; calling it again after the cause is fixed
// completes the remainder.
func EnsureCreated(d Dirs) error {
	for _, f := range d.Fields() {
		if err := os.MkdirAll(f.Path, DefaultDirMode); err != nil {
			return fmt.Errorf("creating %s: %w", f.Path, err)
		}
	}
	return nil
}
