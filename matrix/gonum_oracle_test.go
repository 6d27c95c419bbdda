package matrix_test

import (
	"gonum.org/v1/gonum/mat"
)

// gonumQR is the reference QR factorisation.
type gonumQR = mat.QR

func gonumR(qr *mat.QR) *mat.Dense {
	var r mat.Dense
	qr.RTo(&r)

	return &r
}

// gonumEigenvalues returns the real parts of gonum's eigenvalues of a.
func gonumEigenvalues(a *mat.Dense) ([]float64, bool) {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, false
	}
	vals := eig.Values(nil)
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = real(v)
	}

	return out, true
}

// gonumSymEigenvalues returns the ascending eigenvalues of a symmetric a.
func gonumSymEigenvalues(a *mat.Dense) ([]float64, bool) {
	r, _ := a.Dims()
	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, false
	}

	return es.Values(nil), true
}
