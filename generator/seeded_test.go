package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/montanaflynn/stats"
)

func TestHashString(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{in: "", want: 2166136261},
		{in: "abc", want: 440920331},
		{in: "def", want: 3310976652},
		{in: "héllo", want: 4058363231},
		{in: "😀", want: 3409036472},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			qt.Assert(t, qt.Equals(HashString(tt.in), tt.want))
		})
	}
}

func TestSeededReferenceStreams(t *testing.T) {
	tests := []struct {
		name string
		gen  *Seeded
		want []uint32
	}{
		{
			name: "string seed",
			gen:  NewSeededString("abc"),
			want: []uint32{2218960489, 2833055473, 8073077, 3862678725, 3094674101},
		},
		{
			name: "integer seed",
			gen:  NewSeeded(123),
			want: []uint32{3381219976, 766838775, 2127363934, 993692063, 1614012641},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, word := range tt.want {
				qt.Assert(t, qt.Equals(tt.gen.Next(), float64(word)/4294967296), qt.Commentf("draw %d", i))
			}
		})
	}
}

func TestSeededNegativeSeedUsesLowBits(t *testing.T) {
	a := NewSeeded(-1)
	b := NewSeeded(4294967295)
	for i := 0; i < 10; i++ {
		qt.Assert(t, qt.Equals(a.Next(), b.Next()))
	}
	qt.Assert(t, qt.Equals(NewSeeded(-1).Next(), 0.8964226141106337))
}

func TestSeededDeterministic(t *testing.T) {
	a := NewSeededString("abc")
	b := NewSeededString("abc")
	for i := 0; i < 10; i++ {
		qt.Assert(t, qt.Equals(a.Next(), b.Next()))
	}
}

func TestSeededDifferentSeeds(t *testing.T) {
	a := NewSeededString("abc")
	b := NewSeededString("def")
	seqA := make([]float64, 5)
	seqB := make([]float64, 5)
	for i := range seqA {
		seqA[i] = a.Next()
		seqB[i] = b.Next()
	}
	qt.Assert(t, qt.Not(qt.DeepEquals(seqA, seqB)))
}

func TestSeededRange(t *testing.T) {
	for _, gen := range []*Seeded{NewSeeded(123), NewSeeded(0), NewSeededString("range")} {
		for i := 0; i < 1000; i++ {
			v := gen.Next()
			qt.Assert(t, qt.IsTrue(v >= 0 && v < 1), qt.Commentf("value %v", v))
		}
	}
}

func TestSeededIsUniform(t *testing.T) {
	gen := NewSeededString("uniform")
	data := make([]float64, 20000)
	for i := range data {
		data[i] = gen.Next()
	}

	mean, err := stats.Mean(data)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mean > 0.49 && mean < 0.51), qt.Commentf("mean %v", mean))

	// The standard deviation of U(0,1) is 1/sqrt(12), about 0.2887.
	stdDev, err := stats.StandardDeviation(data)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(stdDev > 0.28 && stdDev < 0.30), qt.Commentf("std dev %v", stdDev))
}

func TestSeededStateResumes(t *testing.T) {
	gen := NewSeededString("resume")
	for i := 0; i < 7; i++ {
		gen.Next()
	}
	resumed := NewSeeded(int64(gen.State()))
	for i := 0; i < 5; i++ {
		qt.Assert(t, qt.Equals(resumed.Next(), gen.Next()))
	}
}

func TestSeededUint64(t *testing.T) {
	gen := NewSeeded(123)
	qt.Assert(t, qt.Equals(gen.Uint64(), uint64(3381219976)<<32|766838775))

	// Same seed, same math/rand/v2 stream.
	a := rand.New(NewSeeded(99))
	b := rand.New(NewSeeded(99))
	qt.Assert(t, qt.DeepEquals(a.Perm(10), b.Perm(10)))
}

func BenchmarkSeededNext(b *testing.B) {
	gen := NewSeeded(1)
	for i := 0; i < b.N; i++ {
		_ = gen.Next()
	}
}

func BenchmarkHashString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = HashString("the quick brown fox")
	}
}
