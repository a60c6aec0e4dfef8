//go:build !linux && !windows

package platform

// New reports that no window backend exists for this operating system.
func New() (Backend, error) {
	return nil, ErrUnsupportedPlatform
}
