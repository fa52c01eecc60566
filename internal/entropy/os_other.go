//go:build !linux

package entropy

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("getrandom(2) is not available on " + runtime.GOOS)

type osSource struct{}

// OS returns the getrandom(2) source. It is never usable on this platform.
func OS() Source {
	return osSource{}
}

func (osSource) Name() string { return "getrandom" }

func (osSource) Read(_ []byte) error {
	return errUnsupported
}
