// Package generators derives structured tuple inputs from fuzz data.
package generators

import (
	"fmt"
	"math/rand"

	"github.com/funvibe/funtuple/pkg/tuple"
	"github.com/google/uuid"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness. Exhausted data
// yields zeros, so a given fuzz payload always derives the same inputs.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// MaxArity caps generated tuple lengths.
const MaxArity = 12

// Generator builds arbitrary tuples and index lists.
type Generator struct {
	src RandomSource
}

func New(seed int64) *Generator {
	return &Generator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

// Intn exposes the random source's Intn method.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// pair is a comparable struct element for the palette.
type pair struct {
	X, Y int
}

// Value produces one element from a palette of mixed sizes and kinds.
// Floats are built from small integers so derived values never hit NaN
// comparison traps.
func (g *Generator) Value() any {
	switch g.src.Intn(8) {
	case 0:
		return g.src.Intn(2) == 1
	case 1:
		return int8(g.src.Intn(256) - 128)
	case 2:
		return int32(g.src.Intn(1 << 16))
	case 3:
		return int64(g.src.Intn(1 << 30))
	case 4:
		return float64(g.src.Intn(1000)) / 8
	case 5:
		return fmt.Sprintf("s%d", g.src.Intn(1000))
	case 6:
		var id uuid.UUID
		for i := range id {
			id[i] = byte(g.src.Intn(256))
		}
		return id
	default:
		return pair{X: g.src.Intn(100), Y: g.src.Intn(100)}
	}
}

// Values builds up to MaxArity palette elements.
func (g *Generator) Values() []any {
	n := g.src.Intn(MaxArity + 1)
	values := make([]any, n)
	for i := range values {
		values[i] = g.Value()
	}
	return values
}

// Tuple builds a tuple of generated values.
func (g *Generator) Tuple() tuple.Tuple {
	return tuple.Of(g.Values()...)
}

// Indices builds an index list of up to max entries, each valid for a
// tuple of the given length. A non-positive length yields an empty list.
func (g *Generator) Indices(length, max int) tuple.Indices {
	if length <= 0 {
		return nil
	}
	n := g.src.Intn(max + 1)
	ix := make(tuple.Indices, n)
	for i := range ix {
		ix[i] = g.src.Intn(length)
	}
	return ix
}
