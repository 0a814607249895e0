package loadflow

import (
	"context"
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bft-labs/gridsim/internal/domain"
)

var (
	errMaxIterations = errors.New("max iterations reached")
	errDiverged      = errors.New("diverged")
)

// unknowns maps buses to Newton state variables: one angle per non-slack
// bus, then one magnitude per PQ bus. -1 marks a bus without that variable.
type unknowns struct {
	theta []int
	v     []int
	size  int
}

func (s *system) unknowns() unknowns {
	u := unknowns{theta: make([]int, len(s.nodes)), v: make([]int, len(s.nodes))}
	for i, nd := range s.nodes {
		u.theta[i] = -1
		if nd.kind != busSlack {
			u.theta[i] = u.size
			u.size++
		}
	}
	for i, nd := range s.nodes {
		u.v[i] = -1
		if nd.kind == busPQ {
			u.v[i] = u.size
			u.size++
		}
	}
	return u
}

// newton runs Newton-Raphson from the current state until the largest
// mismatch drops below the tolerance. It returns the number of linear solves.
func (s *system) newton(ctx context.Context, p Parameters) (int, error) {
	u := s.unknowns()
	if u.size == 0 {
		return 0, nil
	}

	pcalc := make([]float64, len(s.nodes))
	qcalc := make([]float64, len(s.nodes))
	rhs := mat.NewVecDense(u.size, nil)
	dx := mat.NewVecDense(u.size, nil)
	jac := mat.NewDense(u.size, u.size, nil)
	var lu mat.LU

	for it := 0; ; it++ {
		if err := ctx.Err(); err != nil {
			return it, err
		}

		worst := 0.0
		for i := range s.nodes {
			pcalc[i], qcalc[i] = s.injection(i)
			if r := u.theta[i]; r >= 0 {
				d := s.specP(i) - pcalc[i]
				rhs.SetVec(r, d)
				worst = math.Max(worst, math.Abs(d))
			}
			if r := u.v[i]; r >= 0 {
				d := s.specQ(i) - qcalc[i]
				rhs.SetVec(r, d)
				worst = math.Max(worst, math.Abs(d))
			}
		}
		if math.IsNaN(worst) || math.IsInf(worst, 0) {
			return it, errDiverged
		}
		if worst < p.Tolerance {
			return it, nil
		}
		if it == p.MaxIterations {
			return it, errMaxIterations
		}

		s.jacobian(jac, u, pcalc, qcalc)
		lu.Factorize(jac)
		if err := lu.SolveVecTo(dx, false, rhs); err != nil {
			return it, domain.ErrSingularJacobian
		}

		for i, nd := range s.nodes {
			if c := u.theta[i]; c >= 0 {
				nd.theta += dx.AtVec(c)
			}
			if c := u.v[i]; c >= 0 {
				nd.v += dx.AtVec(c)
			}
		}
	}
}

// jacobian fills the derivatives of the bus injections with respect to the
// angles and magnitudes in u.
func (s *system) jacobian(jac *mat.Dense, u unknowns, pcalc, qcalc []float64) {
	jac.Zero()
	for i, nd := range s.nodes {
		rp, rq := u.theta[i], u.v[i]
		if rp < 0 && rq < 0 {
			continue
		}
		vi := nd.v
		gii, bii := real(nd.yii), imag(nd.yii)

		for _, e := range nd.row {
			if e.k == i {
				continue
			}
			other := s.nodes[e.k]
			sin, cos := math.Sincos(nd.theta - other.theta)
			g, b := real(e.y), imag(e.y)
			gsbc := g*sin - b*cos
			gcbs := g*cos + b*sin
			ct, cv := u.theta[e.k], u.v[e.k]

			if rp >= 0 {
				if ct >= 0 {
					jac.Set(rp, ct, vi*other.v*gsbc)
				}
				if cv >= 0 {
					jac.Set(rp, cv, vi*gcbs)
				}
			}
			if rq >= 0 {
				if ct >= 0 {
					jac.Set(rq, ct, -vi*other.v*gcbs)
				}
				if cv >= 0 {
					jac.Set(rq, cv, vi*gsbc)
				}
			}
		}

		if rp >= 0 {
			jac.Set(rp, rp, -qcalc[i]-bii*vi*vi)
			if rq >= 0 {
				jac.Set(rp, rq, pcalc[i]/vi+gii*vi)
			}
		}
		if rq >= 0 {
			jac.Set(rq, rp, pcalc[i]-gii*vi*vi)
			jac.Set(rq, rq, qcalc[i]/vi-bii*vi)
		}
	}
}
