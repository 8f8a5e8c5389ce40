package dirs

import (
	"os"
	"os/user"
)

// Builder selects between service and user directories using a set of
// detection heuristics. It is created through Simple.
//
// The With* methods are evaluated in order and immediately, not delayed
// until Build. Once one of them detects service mode, later ones are
// skipped.
type Builder struct {
	service bool
	id      Identity
}

// Simple starts a builder that picks the directory provider based on
// how the application is run. Passing the service signal explicitly is
// also common, for example from a command line flag:
//
//	u, err := dirs.Simple("com.example", "Example", "myapp").
//		With(func(*dirs.Builder) bool { return opts.Service }).
//		Build()
func Simple(qualifier, organization, application string) *Builder {
	return &Builder{id: Identity{
		Qualifier:    qualifier,
		Organization: organization,
		Application:  application,
	}}
}

// WithEnv flags service mode when the SERVICE or DAEMON environment
// variable is present, regardless of its value.
func (b *Builder) WithEnv() *Builder {
	return b.With(func(*Builder) bool {
		if _, ok := os.LookupEnv("SERVICE"); ok {
			return true
		}
		_, ok := os.LookupEnv("DAEMON")
		return ok
	})
}

// WithArgs flags service mode when --service or --daemon is among the
// program arguments.
func (b *Builder) WithArgs() *Builder {
	return b.With(func(*Builder) bool {
		for _, arg := range os.Args[1:] {
			if arg == "--service" || arg == "--daemon" {
				return true
			}
		}
		return false
	})
}

// WithUsername flags service mode when the process runs under an
// account named like the application, a common setup for dedicated
// service users.
func (b *Builder) WithUsername() *Builder {
	return b.With(func(b *Builder) bool {
		u, err := user.Current()
		return err == nil && u.Username == b.id.Application
	})
}

// With applies a custom detection predicate. It is only called when no
// earlier heuristic detected service mode; returning true selects
// service mode.
func (b *Builder) With(f func(*Builder) bool) *Builder {
	if !b.service {
		b.service = f(b)
	}
	return b
}

// Build resolves service directories when any heuristic fired and user
// directories otherwise.
func (b *Builder) Build() (*Unified, error) {
	mode := ModeUser
	if b.service {
		mode = ModeService
	}
	return New(b.id, mode)
}

// Detect enables all built-in heuristics and builds. It is shorthand
// for WithEnv().WithArgs().WithUsername().Build().
func (b *Builder) Detect() (*Unified, error) {
	return b.WithEnv().WithArgs().WithUsername().Build()
}
