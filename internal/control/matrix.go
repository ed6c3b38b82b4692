package control

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dynctl/internal/algebra"
)

// MatrixFeedback returns the linear state feedback u = K·e. Error components
// beyond the columns of K are ignored and missing ones are taken as zero.
func MatrixFeedback(k mat.Matrix) FeedbackFunc[algebra.VecN, algebra.VecN] {
	rows, cols := k.Dims()
	return func(e algebra.VecN) algebra.VecN {
		padded := make([]float64, cols)
		copy(padded, e)
		var u mat.VecDense
		u.MulVec(k, mat.NewVecDense(cols, padded))
		out := make(algebra.VecN, rows)
		for i := range out {
			out[i] = u.AtVec(i)
		}
		return out
	}
}

// PDGains builds the n×2n gain matrix [kp·I | kd·I] for a state laid out as
// n positions followed by n velocities.
func PDGains(kp, kd float64, n int) *mat.Dense {
	k := mat.NewDense(n, 2*n, nil)
	for i := 0; i < n; i++ {
		k.Set(i, i, kp)
		k.Set(i, n+i, kd)
	}
	return k
}
