// Package dirs resolves standard filesystem directories for an
// application across three operating contexts: local development,
// running as a system service, and running interactively as a user.
//
// Resolution is pure: it only computes paths from the application
// identity, the selected mode and read-only environment state. The one
// side-effecting helper is EnsureCreated.
package dirs

// Directories is the common surface provided by every directory
// provider. Note that on some platforms different directories can end
// up being the same path.
type Directories interface {
	// CacheDir is a location for temporary data the application must be
	// able to re-create, as the contents may be deleted at any time.
	CacheDir() string

	// ConfigDir is where the application's settings are stored.
	ConfigDir() string

	// DataDir holds the application's state data, like a database.
	DataDir() string

	// Dirs returns the full set of resolved directories.
	Dirs() Dirs
}

// Dirs holds the resolved absolute paths for one application in one
// mode. Optional directories are the empty string when the platform in
// effect defines no such location.
type Dirs struct {
	ConfigDir string `json:"config_dir" yaml:"config_dir"`
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	// DataLocalDir is the non-roaming variant of DataDir. It equals
	// DataDir on platforms without a roaming profile concept.
	DataLocalDir string `json:"data_local_dir,omitempty" yaml:"data_local_dir,omitempty"`
	CacheDir     string `json:"cache_dir" yaml:"cache_dir"`
	LogDir       string `json:"log_dir,omitempty" yaml:"log_dir,omitempty"`
	RuntimeDir   string `json:"runtime_dir,omitempty" yaml:"runtime_dir,omitempty"`
}

// Field is one labeled directory out of a Dirs value.
type Field struct {
	Label string
	Path  string
}

// Fields lists the populated directories in a stable order, labeled by
// their snake_case field names. Absent directories are skipped.
func (d Dirs) Fields() []Field {
	all := []Field{
		{"config_dir", d.ConfigDir},
		{"data_dir", d.DataDir},
		{"data_local_dir", d.DataLocalDir},
		{"cache_dir", d.CacheDir},
		{"log_dir", d.LogDir},
		{"runtime_dir", d.RuntimeDir},
	}

	fields := make([]Field, 0, len(all))
	for _, f := range all {
		if f.Path != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
