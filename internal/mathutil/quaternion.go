package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerToQuat converts Euler XYZ angles (radians) to a unit quaternion.
// The result rotates about X first, then Y, then Z: Rz·Ry·Rx.
func EulerToQuat(rx, ry, rz float64) quat.Number {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return quat.Number{
		Real: cx*cy*cz + sx*sy*sz,
		Imag: sx*cy*cz - cx*sy*sz,
		Jmag: cx*sy*cz + sx*cy*sz,
		Kmag: cx*cy*sz - sx*sy*cz,
	}
}

// QuatToMat3 converts a unit quaternion to a 3×3 rotation matrix.
func QuatToMat3(q quat.Number) Mat3 {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat3ToQuat converts a rotation matrix to a unit quaternion, picking the
// largest of w, x, y, z as the pivot to keep the division well conditioned.
// The inverse of QuatToMat3 up to the sign of the result.
func Mat3ToQuat(m Mat3) quat.Number {
	tr := m[0] + m[4] + m[8]
	switch {
	case tr > 0:
		s := math.Sqrt(1+tr) * 2 // 4w
		return quat.Number{Real: s / 4, Imag: (m[7] - m[5]) / s, Jmag: (m[2] - m[6]) / s, Kmag: (m[3] - m[1]) / s}
	case m[0] > m[4] && m[0] > m[8]:
		s := math.Sqrt(1+m[0]-m[4]-m[8]) * 2 // 4x
		return quat.Number{Real: (m[7] - m[5]) / s, Imag: s / 4, Jmag: (m[1] + m[3]) / s, Kmag: (m[2] + m[6]) / s}
	case m[4] > m[8]:
		s := math.Sqrt(1+m[4]-m[0]-m[8]) * 2 // 4y
		return quat.Number{Real: (m[2] - m[6]) / s, Imag: (m[1] + m[3]) / s, Jmag: s / 4, Kmag: (m[5] + m[7]) / s}
	default:
		s := math.Sqrt(1+m[8]-m[0]-m[4]) * 2 // 4z
		return quat.Number{Real: (m[3] - m[1]) / s, Imag: (m[2] + m[6]) / s, Jmag: (m[5] + m[7]) / s, Kmag: s / 4}
	}
}
