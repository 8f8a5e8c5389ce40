package dirs

import (
	"fmt"
	"runtime"
	"strings"
)

// Identity describes the application on whose behalf directories are
// resolved. Application is required; Qualifier and Organization are
// optional and only consulted on platforms whose conventions include
// them.
//
// Field values are used verbatim as path segments. Outside of service
// mode they are not sanitized against traversal sequences; callers are
// expected to supply trusted values.
type Identity struct {
	// Qualifier is a reverse-domain organization identifier, for
	// example "com.example".
	Qualifier string

	// Organization is the organization's display name.
	Organization string

	// Application is the application name. It is the only required
	// field.
	Application string
}

// Validate checks the baseline requirements common to all modes.
func (id Identity) Validate() error {
	if id.Application == "" {
		return fmt.Errorf("%w: application name is empty", ErrInvalidIdentity)
	}
	return nil
}

// validateService additionally rejects segments that are unsafe as
// directory names in shared system locations.
func (id Identity) validateService() error {
	if err := id.Validate(); err != nil {
		return err
	}
	for _, segment := range []string{id.Organization, id.Application} {
		if segment == "" {
			continue
		}
		if err := checkSegment(segment); err != nil {
			return err
		}
	}
	return nil
}

func checkSegment(s string) error {
	switch {
	case s == "." || s == "..":
		return fmt.Errorf("%w: %q is not a valid directory name", ErrInvalidIdentity, s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidIdentity, s)
	}
	return nil
}

// userDirName is the application directory name used in user mode,
// following the naming convention of the host platform: the bare
// application name on Unix, a bundle identifier on macOS and an
// organization subfolder on Windows.
func (id Identity) userDirName() string {
	return userDirNameFor(runtime.GOOS, id)
}

func userDirNameFor(goos string, id Identity) string {
	switch goos {
	case "darwin":
		parts := make([]string, 0, 3)
		for _, part := range []string{id.Qualifier, id.Organization, id.Application} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, ".")
	case "windows":
		org := id.Organization
		if org == "" {
			org = id.Application
		}
		return org + `\` + id.Application
	default:
		return id.Application
	}
}
