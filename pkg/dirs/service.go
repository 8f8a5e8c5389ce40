package dirs

import (
	"fmt"
	"runtime"
)

// ServiceDirs provides system-wide directories for applications that
// run as a daemon, controlled by the system rather than a user session.
//
// On Unix-like systems these are the standard system locations:
//
//	config  /etc/<app>
//	data    /var/lib/<app>
//	cache   /var/cache/<app>
//	log     /var/log/<app>
//	runtime /run/<app>
//
// On Windows they live under the NetworkService profile, split into the
// Roaming (config, data) and Local (cache, local data) folders; the
// organization name is only used there. Windows defines no service log
// or runtime directory, so those are absent.
type ServiceDirs struct {
	dirs Dirs
}

// NewServiceDirs resolves the service directories for the given
// organization and application names. Both names end up as directory
// names in shared system locations, so they must be filesystem-safe;
// unsafe names fail with ErrInvalidIdentity. Hosts without a known
// service convention fail with ErrUnsupportedPlatform.
func NewServiceDirs(organization, application string) (*ServiceDirs, error) {
	id := Identity{Organization: organization, Application: application}
	if err := id.validateService(); err != nil {
		return nil, err
	}

	d, err := serviceDirsFor(runtime.GOOS, id)
	if err != nil {
		return nil, err
	}
	return &ServiceDirs{dirs: d}, nil
}

func serviceDirsFor(goos string, id Identity) (Dirs, error) {
	switch goos {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix":
		return Dirs{
			ConfigDir:    "/etc/" + id.Application,
			DataDir:      "/var/lib/" + id.Application,
			DataLocalDir: "/var/lib/" + id.Application,
			CacheDir:     "/var/cache/" + id.Application,
			LogDir:       "/var/log/" + id.Application,
			RuntimeDir:   "/run/" + id.Application,
		}, nil
	case "windows":
		org := id.Organization
		if org == "" {
			org = id.Application
		}

		const appData = `C:\Windows\ServiceProfiles\NetworkService\AppData`
		roaming := appData + `\Roaming\` + org + `\` + id.Application
		local := appData + `\Local\` + org + `\` + id.Application

		return Dirs{
			ConfigDir:    roaming + `\config`,
			DataDir:      roaming + `\data`,
			DataLocalDir: local + `\data`,
			CacheDir:     local + `\cache`,
		}, nil
	default:
		return Dirs{}, fmt.Errorf("%w: no service directory convention for %s", ErrUnsupportedPlatform, goos)
	}
}

func (s *ServiceDirs) CacheDir() string  { return s.dirs.CacheDir }
func (s *ServiceDirs) ConfigDir() string { return s.dirs.ConfigDir }
func (s *ServiceDirs) DataDir() string   { return s.dirs.DataDir }

// Dirs returns the full set of resolved directories.
func (s *ServiceDirs) Dirs() Dirs { return s.dirs }
