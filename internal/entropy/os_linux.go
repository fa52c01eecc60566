//go:build linux

package entropy

import (
	"errors"

	"golang.org/x/sys/unix"
)

type osSource struct{}

// OS returns the source that reads from the kernel with getrandom(2).
func OS() Source {
	return osSource{}
}

func (osSource) Name() string { return "getrandom" }

func (osSource) Read(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
