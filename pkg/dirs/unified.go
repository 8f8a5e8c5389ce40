package dirs

import "fmt"

// Mode selects the directory convention to apply.
type Mode int

const (
	// ModeDevelopment roots all directories under a project-local
	// development root, ignoring OS conventions.
	ModeDevelopment Mode = iota
	// ModeService uses the system-wide service directories.
	ModeService
	// ModeUser uses the current user's standard directories.
	ModeUser
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeService:
		return "service"
	case ModeUser:
		return "user"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode. It accepts the canonical
// names as well as the short forms "dev", "local" and "daemon".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "development", "dev", "local":
		return ModeDevelopment, nil
	case "service", "daemon":
		return ModeService, nil
	case "user":
		return ModeUser, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Option configures New and Resolve.
type Option func(*options)

type options struct {
	devRoot string
}

// WithDevRoot overrides the development root used by ModeDevelopment.
// It has no effect on the other modes.
func WithDevRoot(root string) Option {
	return func(o *options) { o.devRoot = root }
}

// Unified pairs a directory provider with the mode it was resolved for.
// It implements Directories by delegating to the provider.
type Unified struct {
	mode     Mode
	provider Directories
}

// New resolves directories like Resolve but keeps the provider, so the
// selected mode stays inspectable.
func New(id Identity, mode Mode, opts ...Option) (*Unified, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		provider Directories
		err      error
	)
	switch mode {
	case ModeDevelopment:
		if o.devRoot != "" {
			provider = NewLocalDirsAt(o.devRoot)
		} else {
			provider, err = NewLocalDirs()
		}
	case ModeService:
		provider, err = NewServiceDirs(id.Organization, id.Application)
	case ModeUser:
		provider, err = NewUserDirs(id.Qualifier, id.Organization, id.Application)
	default:
		err = fmt.Errorf("unknown mode %v", mode)
	}
	if err != nil {
		return nil, err
	}

	return &Unified{mode: mode, provider: provider}, nil
}

// Resolve maps the identity to a set of directories following the
// convention selected by mode. For a fixed identity, mode, operating
// system and environment the result is deterministic.
func Resolve(id Identity, mode Mode, opts ...Option) (Dirs, error) {
	u, err := New(id, mode, opts...)
	if err != nil {
		return Dirs{}, err
	}
	return u.Dirs(), nil
}

// Mode reports which convention the directories were resolved with.
func (u *Unified) Mode() Mode { return u.mode }

func (u *Unified) CacheDir() string  { return u.provider.CacheDir() }
func (u *Unified) ConfigDir() string { return u.provider.ConfigDir() }
func (u *Unified) DataDir() string   { return u.provider.DataDir() }

// Dirs returns the full set of resolved directories.
func (u *Unified) Dirs() Dirs { return u.provider.Dirs() }
