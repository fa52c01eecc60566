package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/antithesishq/antithesis-random-go/engine"
)

func TestRunSeeded(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-seed", "abc", "-n", "2"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(stdout.String(), "0.5166419988963753\n0.6596221292857081\n"))
}

func TestRunIntegerSeed(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-seed", "123", "-n", "1"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(stdout.String(), "0.7872516233474016\n"))
}

func TestRunSecure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-secure", "-n", "3"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNil(err))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	qt.Assert(t, qt.HasLen(lines, 4))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(lines[0], "entropy source: ")))
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-secure", "-seed", "abc"}, &stdout, &stderr)
	qt.Assert(t, qt.ErrorMatches(err, "-seed and -secure are mutually exclusive"))

	err = run([]string{"-n", "-1"}, &stdout, &stderr)
	qt.Assert(t, qt.ErrorIs(err, engine.ErrNegativeCount))

	err = run([]string{"-bogus"}, &stdout, &stderr)
	qt.Assert(t, qt.IsNotNil(err))
}
