package dataset

import (
	"fmt"
	"math/rand"

	"github.com/sajltaha/citygraph/core"
)

// DefaultSeed seeds the standard dataset suite.
const DefaultSeed = 42

// Generator draws synthetic dataset descriptions from one seeded random
// stream. A single Generator produces every dataset of a suite in
// order, so a fixed seed reproduces the whole set byte for byte.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator over a stream seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) weight(minW, maxW int64) int64 {
	return minW + g.rnd.Int63n(maxW-minW+1)
}

func checkDensity(density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: %g", ErrBadDensity, density)
	}

	return nil
}

func checkWeights(minW, maxW int64) error {
	if minW > maxW {
		return fmt.Errorf("%w: [%d, %d]", ErrBadWeightRange, minW, maxW)
	}

	return nil
}

// DAG generates an acyclic description: every forward edge u < v is
// drawn with a random weight, the list is shuffled, and the first
// density share is kept. The source is vertex 0.
func (g *Generator) DAG(n int, density float64, minW, maxW int64) (*Description, error) {
	// 1. Validate parameters.
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	if err := checkWeights(minW, maxW); err != nil {
		return nil, err
	}

	// 2. Draw every lower-to-higher edge, then shuffle.
	possible := make([]EdgeDesc, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			possible = append(possible, EdgeDesc{U: u, V: v, W: g.weight(minW, maxW)})
		}
	}
	g.rnd.Shuffle(len(possible), func(i, j int) {
		possible[i], possible[j] = possible[j], possible[i]
	})

	// 3. Keep the density share.
	target := int(float64(len(possible)) * density)
	edges := make([]EdgeDesc, 0, target)
	edges = append(edges, possible[:target]...)

	return &Description{
		Directed:    true,
		N:           n,
		Edges:       edges,
		Source:      0,
		WeightModel: core.DefaultWeightModel,
	}, nil
}

// Random generates a directed description holding a density share of
// the n*(n-1) possible non-loop edges, deduplicated by ordered pair.
// With ensureCycle a short random walk is ring-connected first; its
// vertices are drawn with replacement, so the closed walk always
// contains a cycle even when picks repeat. The source is random.
func (g *Generator) Random(n int, density float64, minW, maxW int64, ensureCycle bool) (*Description, error) {
	// 1. Validate parameters. A seeded cycle needs room for two vertices.
	if n < 1 || (ensureCycle && n < 2) {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	if err := checkWeights(minW, maxW); err != nil {
		return nil, err
	}

	d := &Description{
		Directed:    true,
		N:           n,
		Edges:       []EdgeDesc{},
		Source:      g.rnd.Intn(n),
		WeightModel: core.DefaultWeightModel,
	}

	type pair struct{ u, v int }
	seen := make(map[pair]struct{})
	add := func(u, v int) {
		if _, ok := seen[pair{u, v}]; ok {
			return
		}
		seen[pair{u, v}] = struct{}{}
		d.Edges = append(d.Edges, EdgeDesc{U: u, V: v, W: g.weight(minW, maxW)})
	}

	// 2. Seed the cycle walk.
	if ensureCycle {
		size := 2 + g.rnd.Intn(min(4, n-1))
		walk := make([]int, size)
		for i := range walk {
			walk[i] = g.rnd.Intn(n)
		}
		for i := 0; i < size; i++ {
			add(walk[i], walk[(i+1)%size])
		}
	}

	// 3. Fill with distinct random non-loop edges up to the target.
	target := int(float64(n*(n-1)) * density)
	for len(d.Edges) < target {
		u, v := g.rnd.Intn(n), g.rnd.Intn(n)
		if u != v {
			add(u, v)
		}
	}

	return d, nil
}

// MultiSCC generates numSCCs strongly connected blocks of random size
// within [minSize, maxSize]: a ring through each block guarantees its
// cycle, roughly a third of the members gain an extra chord, and every
// ordered block pair is bridged with probability interDensity. The
// source is the first vertex of the first block. Bridges run both ways,
// so blocks may merge into larger components.
func (g *Generator) MultiSCC(numSCCs, minSize, maxSize int, interDensity float64, minW, maxW int64) (*Description, error) {
	// 1. Validate parameters.
	if numSCCs < 1 {
		return nil, fmt.Errorf("%w: %d components", ErrBadVertexCount, numSCCs)
	}
	if minSize < 1 || minSize > maxSize {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadComponentSize, minSize, maxSize)
	}
	if err := checkDensity(interDensity); err != nil {
		return nil, err
	}
	if err := checkWeights(minW, maxW); err != nil {
		return nil, err
	}

	d := &Description{
		Directed:    true,
		Edges:       []EdgeDesc{},
		WeightModel: core.DefaultWeightModel,
	}

	// 2. Carve the vertex range into blocks; ring-connect each and
	//    sprinkle intra-block chords.
	blocks := make([][]int, 0, numSCCs)
	next := 0
	for i := 0; i < numSCCs; i++ {
		size := minSize + g.rnd.Intn(maxSize-minSize+1)
		block := make([]int, 0, size)
		for j := 0; j < size; j++ {
			block = append(block, next)
			next++
		}
		blocks = append(blocks, block)

		for j := 0; j < size; j++ {
			d.Edges = append(d.Edges, EdgeDesc{
				U: block[j], V: block[(j+1)%size], W: g.weight(minW, maxW),
			})
		}
		for j := 0; j < size; j++ {
			if g.rnd.Float64() < 0.3 {
				u, v := block[j], block[g.rnd.Intn(size)]
				if u != v {
					d.Edges = append(d.Edges, EdgeDesc{U: u, V: v, W: g.weight(minW, maxW)})
				}
			}
		}
	}
	d.N = next
	d.Source = blocks[0][0]

	// 3. Bridge ordered block pairs.
	for i := 0; i < numSCCs; i++ {
		for j := 0; j < numSCCs; j++ {
			if i == j || g.rnd.Float64() >= interDensity {
				continue
			}
			u := blocks[i][g.rnd.Intn(len(blocks[i]))]
			v := blocks[j][g.rnd.Intn(len(blocks[j]))]
			d.Edges = append(d.Edges, EdgeDesc{U: u, V: v, W: g.weight(minW, maxW)})
		}
	}

	return d, nil
}
