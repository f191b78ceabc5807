// Package frustum extracts the six clip planes of a combined
// projection*view matrix and tests axis-aligned boxes against them with the
// positive-vertex trick. It lives outside the renderer so the terrain
// grid's draw driver can cull without a GL dependency.
package frustum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane is ax + by + cz + d = 0, normalized.
type Plane struct {
	A, B, C, D float32
}

// Planes holds the six frustum planes in order: left, right, bottom, top,
// near, far.
type Planes [6]Plane

// Extract builds the six planes from a combined (projection * view) matrix.
func Extract(clip mgl32.Mat4) Planes {
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	var p Planes
	p[0] = normalize(Plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	p[1] = normalize(Plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	p[2] = normalize(Plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	p[3] = normalize(Plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	p[4] = normalize(Plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	p[5] = normalize(Plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return p
}

func normalize(p Plane) Plane {
	l := float32(math.Sqrt(float64(p.A*p.A + p.B*p.B + p.C*p.C)))
	if l == 0 {
		return p
	}
	return Plane{p.A / l, p.B / l, p.C / l, p.D / l}
}

// AABBVisible tests an axis-aligned box against all six planes using the
// positive-vertex test: for each plane, only the corner furthest along the
// plane's normal needs checking. The box is outside the frustum if that
// single corner is on the negative side of any plane.
func (p Planes) AABBVisible(minX, minY, minZ, maxX, maxY, maxZ float32) bool {
	for _, pl := range p {
		px := maxX
		if pl.A < 0 {
			px = minX
		}
		py := maxY
		if pl.B < 0 {
			py = minY
		}
		pz := maxZ
		if pl.C < 0 {
			pz = minZ
		}
		if pl.A*px+pl.B*py+pl.C*pz+pl.D < 0 {
			return false
		}
	}
	return true
}
