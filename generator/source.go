package generator

import (
	"math/rand/v2"
)

type source struct {
	src rand.Source
}

// FromSource adapts a math/rand/v2 source, such as rand.NewPCG or
// rand.NewChaCha8, to a Generator. Values carry 53 bits of precision, the
// same construction as rand.Float64.
func FromSource(src rand.Source) Generator {
	return source{src: src}
}

func (s source) Next() float64 {
	return float64(s.src.Uint64()<<11>>11) / (1 << 53)
}
