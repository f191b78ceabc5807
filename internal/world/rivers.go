package world

import (
	"math"
	"strings"
)

// RiverCell is an integer (x, z) world coordinate visited by a river's
// turtle interpreter.
type RiverCell struct {
	X, Z int
}

// River is the result of an L-system derivation: the axiom, rewrite rules,
// iteration count, turn angle, step length, and start point, together with
// the derived set of cells the turtle visited. Rivers are stateless after
// construction; isRiverAt is a pure set-membership test.
type River struct {
	Axiom      string
	Rules      map[byte]string
	Iterations int
	AngleDeg   float64
	Step       float64
	StartX     int
	StartZ     int

	cells map[RiverCell]struct{}
}

// NewRiver derives the L-system string by repeated substitution, then runs
// the turtle interpreter over it to populate the cell set.
func NewRiver(axiom string, rules map[byte]string, iterations int, angleDeg, step float64, startX, startZ int) *River {
	r := &River{
		Axiom:      axiom,
		Rules:      rules,
		Iterations: iterations,
		AngleDeg:   angleDeg,
		Step:       step,
		StartX:     startX,
		StartZ:     startZ,
	}
	derived := r.derive()
	r.cells = r.walk(derived)
	return r
}

// derive repeatedly substitutes each character of the current string with
// its rule (characters without a rule pass through unchanged).
func (r *River) derive() string {
	cur := r.Axiom
	for i := 0; i < r.Iterations; i++ {
		var b strings.Builder
		for j := 0; j < len(cur); j++ {
			c := cur[j]
			if repl, ok := r.Rules[c]; ok {
				b.WriteString(repl)
			} else {
				b.WriteByte(c)
			}
		}
		cur = b.String()
	}
	return cur
}

type turtleState struct {
	x, z    float64
	heading float64
}

// walk interprets the derived symbol string:
//   F advances Step units in the current heading, marking every integer
//     cell crossed into cells.
//   + / - rotate the heading by +/- AngleDeg.
//   [ / ] push / pop (position, heading) onto a stack.
func (r *River) walk(symbols string) map[RiverCell]struct{} {
	cells := make(map[RiverCell]struct{})
	state := turtleState{x: float64(r.StartX), z: float64(r.StartZ), heading: 0}
	var stack []turtleState

	mark := func(s turtleState) {
		cells[RiverCell{X: int(math.Round(s.x)), Z: int(math.Round(s.z))}] = struct{}{}
	}
	mark(state)

	for i := 0; i < len(symbols); i++ {
		switch symbols[i] {
		case 'F':
			rad := state.heading * math.Pi / 180.0
			dx := math.Cos(rad) * r.Step
			dz := math.Sin(rad) * r.Step
			steps := int(math.Round(r.Step))
			if steps < 1 {
				steps = 1
			}
			stepX := dx / float64(steps)
			stepZ := dz / float64(steps)
			for s := 0; s < steps; s++ {
				state.x += stepX
				state.z += stepZ
				mark(state)
			}
		case '+':
			state.heading += r.AngleDeg
		case '-':
			state.heading -= r.AngleDeg
		case '[':
			stack = append(stack, state)
		case ']':
			if len(stack) > 0 {
				state = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		}
	}
	return cells
}

// IsRiverAt is an O(1) expected set membership test.
func (r *River) IsRiverAt(x, z int) bool {
	_, ok := r.cells[RiverCell{X: x, Z: z}]
	return ok
}

// RiverSet is a flat collection of rivers queried together by the generator.
type RiverSet []*River

// IsRiverAt reports whether any river in the set passes through (x, z).
func (rs RiverSet) IsRiverAt(x, z int) bool {
	for _, r := range rs {
		if r.IsRiverAt(x, z) {
			return true
		}
	}
	return false
}

// defaultRiverRules is the axiom/rule-set a newly generated river is seeded
// with: a handful of branch points with gentle meanders.
var defaultRiverRules = map[byte]string{
	'F': "F[+F]F[-F]F",
}

// NewDefaultRiver builds a river rooted at (startX, startZ) with randomized
// iteration count (2-4), turn angle (20-30 deg) and step length (5-15),
// matching the randomization range of the original river seeding.
func NewDefaultRiver(startX, startZ int, rnd func() float64) *River {
	iterations := 2 + int(rnd()*3) // 2..4
	angle := 20 + rnd()*10         // 20..30
	step := 5 + rnd()*10           // 5..15
	return NewRiver("F", defaultRiverRules, iterations, angle, step, startX, startZ)
}
