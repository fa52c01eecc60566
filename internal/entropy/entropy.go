// Package entropy locates a cryptographic random-byte source on the host.
//
// Two sources are known: the platform source backed by crypto/rand, and the
// operating system source which calls getrandom(2) directly. Callers hand an
// ordered list of candidates to Locate, which probes each one and returns the
// first that can deliver bytes.
package entropy

import (
	"errors"
	"fmt"
	"log"
)

const errorLogLinePrefix = "[* antithesis-random-go *]"

// Number of bytes read from a candidate to decide whether it is usable.
const probeSize = 4

// ErrNoSource is returned by Locate when no candidate could be read.
var ErrNoSource = errors.New("no usable entropy source")

// Source fills byte slices with cryptographically secure random bytes.
type Source interface {
	Name() string
	// Read fills p entirely or returns an error.
	Read(p []byte) error
}

// Candidates returns the default probe order: platform first, then OS.
func Candidates() []Source {
	return []Source{Platform(), OS()}
}

// Locate probes candidates in order and returns the first one that works.
// Every failed probe that still has a fallback behind it is logged.
func Locate(candidates ...Source) (Source, error) {
	var probe [probeSize]byte
	var errs []error
	for i, src := range candidates {
		if src == nil {
			continue
		}
		err := src.Read(probe[:])
		if err == nil {
			return src, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
		if i < len(candidates)-1 {
			log.Printf("%s %s entropy source unavailable, trying next: %v", errorLogLinePrefix, src.Name(), err)
		}
	}
	if len(errs) == 0 {
		return nil, ErrNoSource
	}
	return nil, fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}
