package connectome

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Average returns the elementwise mean of equally sized matrices, one per
// scan session. The inputs are not modified.
func Average(ms ...*mat.Dense) (*mat.Dense, error) {
	if len(ms) == 0 {
		return nil, ErrNoSessions
	}
	r, c := ms[0].Dims()
	sum := mat.NewDense(r, c, nil)
	for i, m := range ms {
		if mr, mc := m.Dims(); mr != r || mc != c {
			return nil, fmt.Errorf("%w: session %d is %dx%d, session 0 is %dx%d", ErrShapeMismatch, i, mr, mc, r, c)
		}
		sum.Add(sum, m)
	}
	sum.Scale(1/float64(len(ms)), sum)
	return sum, nil
}
