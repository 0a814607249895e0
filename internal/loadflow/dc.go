package loadflow

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bft-labs/gridsim/internal/domain"
)

// dcSusceptance returns the DC branch susceptance and the injection caused
// by its phase shift, in pu.
func dcSusceptance(br *domain.Branch) (b, pShift float64) {
	x := br.X
	if x == 0 {
		x = br.R
	}
	ratio := br.Ratio
	if ratio == 0 {
		ratio = 1
	}
	b = 1 / (x * ratio)
	return b, -b * br.PhaseShift * math.Pi / 180
}

// dcAngles solves the lossless linear approximation B*theta = P with the
// slack angle fixed at zero and stores the angles on the nodes.
func (s *system) dcAngles() error {
	col := make([]int, len(s.nodes))
	size := 0
	for i := range s.nodes {
		col[i] = -1
		if i != s.slack {
			col[i] = size
			size++
		}
	}
	s.nodes[s.slack].theta = 0
	if size == 0 {
		return nil
	}

	bm := mat.NewDense(size, size, nil)
	rhs := mat.NewVecDense(size, nil)
	for i := range s.nodes {
		if c := col[i]; c >= 0 {
			rhs.SetVec(c, s.specP(i))
		}
	}
	for _, m := range s.branches {
		b, shift := dcSusceptance(m.br)
		cf, ct := col[m.f], col[m.t]
		if cf >= 0 {
			bm.Set(cf, cf, bm.At(cf, cf)+b)
			rhs.SetVec(cf, rhs.AtVec(cf)-shift)
		}
		if ct >= 0 {
			bm.Set(ct, ct, bm.At(ct, ct)+b)
			rhs.SetVec(ct, rhs.AtVec(ct)+shift)
		}
		if cf >= 0 && ct >= 0 {
			bm.Set(cf, ct, bm.At(cf, ct)-b)
			bm.Set(ct, cf, bm.At(ct, cf)-b)
		}
	}

	var lu mat.LU
	lu.Factorize(bm)
	theta := mat.NewVecDense(size, nil)
	if err := lu.SolveVecTo(theta, false, rhs); err != nil {
		return domain.ErrSingularJacobian
	}
	for i, nd := range s.nodes {
		if c := col[i]; c >= 0 {
			nd.theta = theta.AtVec(c)
		}
	}
	return nil
}

// dcSlackMismatch returns the slack active power beyond its targets, in MW.
// With no losses the slack balances every other injection.
func (s *system) dcSlackMismatch() float64 {
	total := 0.0
	for i := range s.nodes {
		total += s.specP(i)
	}
	return -total * s.baseMVA
}
