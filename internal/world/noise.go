package world

import (
	"math"
	"math/rand"
)

// Noise is a seed-parameterized, permutation-based gradient noise generator
// (Perlin-style, fade curve 6t^5-15t^4+10t^3) in 2D and 3D, plus fractal
// octave summation and a deterministic integer hash for biome tie-breaks.
//
// For a fixed seed, every method is a pure function of its coordinates: the
// permutation table is built once in New and never mutated afterward, so
// concurrent readers need no synchronization.
type Noise struct {
	seed int64
	perm [512]int
}

// NewNoise builds the permutation table for seed by Fisher-Yates shuffling
// 0..255 with a seeded PRNG, then doubling it to avoid wraparound checks in
// the lattice lookups.
func NewNoise(seed int64) *Noise {
	n := &Noise{seed: seed}
	table := make([]int, 256)
	for i := range table {
		table[i] = i
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(table), func(i, j int) { table[i], table[j] = table[j], table[i] })
	for i := 0; i < 512; i++ {
		n.perm[i] = table[i%256]
	}
	return n
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad2(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

func grad3(hash int, x, y, z float64) float64 {
	h := hash & 15
	var u, v float64
	if h < 8 {
		u = x
	} else {
		u = y
	}
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	} else {
		v = z
	}
	result := 0.0
	if h&1 == 0 {
		result += u
	} else {
		result -= u
	}
	if h&2 == 0 {
		result += v
	} else {
		result -= v
	}
	return result
}

// Perlin2D returns 2D Perlin noise in roughly [-1, 1] at (x, y).
func (n *Noise) Perlin2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(u, grad2(aa, xf, yf), grad2(ba, xf-1, yf))
	x2 := lerp(u, grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Perlin3D returns 3D Perlin noise in roughly [-1, 1], used for caves.
func (n *Noise) Perlin3D(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	a := n.perm[xi] + yi
	aa := n.perm[a] + zi
	ab := n.perm[a+1] + zi
	b := n.perm[xi+1] + yi
	ba := n.perm[b] + zi
	bb := n.perm[b+1] + zi

	x1 := lerp(u, grad3(n.perm[aa], xf, yf, zf), grad3(n.perm[ba], xf-1, yf, zf))
	x2 := lerp(u, grad3(n.perm[ab], xf, yf-1, zf), grad3(n.perm[bb], xf-1, yf-1, zf))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad3(n.perm[aa+1], xf, yf, zf-1), grad3(n.perm[ba+1], xf-1, yf, zf-1))
	x2 = lerp(u, grad3(n.perm[ab+1], xf, yf-1, zf-1), grad3(n.perm[bb+1], xf-1, yf-1, zf-1))
	y2 := lerp(v, x1, x2)

	return lerp(w, y1, y2)
}

// Fractal2D sums octaves of Perlin2D noise at doubling frequency and halving
// amplitude (persistence), normalized by the maximum possible amplitude so
// the result stays in roughly [-1, 1].
func (n *Noise) Fractal2D(x, z float64, octaves int, persistence float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		sum += n.Perlin2D(x*frequency, z*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}

// PseudoRandom is a deterministic hash on (x, z, seed) into [0, 1), used to
// break ties in the biome transition band. Grounded on the integer mixing
// formula used by the original biome classifier.
func (n *Noise) PseudoRandom(x, z int) float64 {
	v := int64(x)*123456789 + int64(z)*987654321 + n.seed*144630960
	v = (v ^ (v >> 13)) * 1274126177
	v = v ^ (v >> 16)
	m := v % 1000
	if m < 0 {
		m += 1000
	}
	return float64(m) / 1000.0
}

// basicLattice hashes an integer lattice point to a value in [-1, 1],
// seed-mixed so it is independent of Perlin2D's gradient permutation table.
func (n *Noise) basicLattice(x, z int) float64 {
	h := int64(x)*374761393 + int64(z)*668265263 + n.seed*2246822519
	h = (h ^ (h >> 13)) * 3266489917
	h = h ^ (h >> 16)
	if h < 0 {
		h = -h
	}
	return float64(h%2000)/1000.0 - 1.0
}

// Smooth2D is a hashed value-noise lattice (distinct from the gradient-based
// Perlin2D) bilinearly interpolated with the same fade curve. It is used
// only as the blend factor inside the biome transition band, separate from
// the sign test that classifies the biome itself.
func (n *Noise) Smooth2D(x, z float64) float64 {
	xi := int(math.Floor(x))
	zi := int(math.Floor(z))
	xf := x - math.Floor(x)
	zf := z - math.Floor(z)

	u := fade(xf)
	v := fade(zf)

	v00 := n.basicLattice(xi, zi)
	v10 := n.basicLattice(xi+1, zi)
	v01 := n.basicLattice(xi, zi+1)
	v11 := n.basicLattice(xi+1, zi+1)

	return lerp(v, lerp(u, v00, v10), lerp(u, v01, v11))
}
