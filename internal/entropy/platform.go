package entropy

import (
	crand "crypto/rand"
)

type platformSource struct{}

// Platform returns the source backed by crypto/rand.
func Platform() Source {
	return platformSource{}
}

func (platformSource) Name() string { return "platform" }

func (platformSource) Read(p []byte) error {
	_, err := crand.Read(p)
	return err
}
