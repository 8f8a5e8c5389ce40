package dirs

import "errors"

var (
	// ErrInvalidIdentity reports an empty application name, or identity
	// fields that are not filesystem-safe where safety is required.
	ErrInvalidIdentity = errors.New("invalid application identity")

	// ErrUnsupportedPlatform reports that no directory convention is
	// known for the requested mode on the host operating system.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
