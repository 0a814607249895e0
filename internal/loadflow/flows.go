package loadflow

import (
	"math"
	"math/cmplx"
)

// currentA converts an apparent power in MVA at a voltage in kV to amperes.
func currentA(sMVA, kV float64) float64 {
	if kV == 0 {
		return math.NaN()
	}
	return sMVA * 1000 / (math.Sqrt(3) * kV)
}

func (nd *node) phasor() complex128 {
	return cmplx.Rect(nd.v, nd.theta)
}

// writeAC copies the solved state to the network: bus voltages, branch
// flows and generator outputs.
func (s *system) writeAC() {
	base := complex(s.baseMVA, 0)
	for _, nd := range s.nodes {
		nd.bus.V = nd.v
		nd.bus.Angle = nd.theta * 180 / math.Pi
	}

	for _, m := range s.branches {
		f, t := s.nodes[m.f], s.nodes[m.t]
		vf, vt := f.phasor(), t.phasor()
		sf := vf * cmplx.Conj(m.yff*vf+m.yft*vt) * base
		st := vt * cmplx.Conj(m.ytf*vf+m.ytt*vt) * base
		m.br.P1, m.br.Q1 = real(sf), imag(sf)
		m.br.P2, m.br.Q2 = real(st), imag(st)
		m.br.I1 = currentA(cmplx.Abs(sf), f.v*f.nomV)
		m.br.I2 = currentA(cmplx.Abs(st), t.v*t.nomV)
	}

	for i, nd := range s.nodes {
		p, q := s.injection(i)
		s.writeGenerators(i, p*s.baseMVA+nd.loadP, q*s.baseMVA+nd.loadQ)
	}
}

// writeDC copies a DC solution: flat voltages, angles and active flows.
func (s *system) writeDC() {
	for _, nd := range s.nodes {
		nd.bus.V = 1
		nd.bus.Angle = nd.theta * 180 / math.Pi
	}

	for _, m := range s.branches {
		b, shift := dcSusceptance(m.br)
		p := (b*(s.nodes[m.f].theta-s.nodes[m.t].theta) + shift) * s.baseMVA
		m.br.P1, m.br.Q1 = p, 0
		m.br.P2, m.br.Q2 = -p, 0
		m.br.I1 = currentA(math.Abs(p), s.nodes[m.f].nomV)
		m.br.I2 = currentA(math.Abs(p), s.nodes[m.t].nomV)
	}

	slackP := s.dcSlackMismatch()
	for i, nd := range s.nodes {
		p := -nd.loadP
		for _, g := range nd.gens {
			p += g.p
		}
		if i == s.slack {
			p += slackP
		}
		s.writeGenerators(i, p+nd.loadP, 0)
	}
}

// writeGenerators splits the generation at bus i over its generators.
// Active power follows the targets, with the slack generator taking the
// balance. Reactive power goes to regulating generators in proportion to
// their reactive range, or sits at the limit on a switched bus.
func (s *system) writeGenerators(i int, genP, genQ float64) {
	nd := s.nodes[i]
	if len(nd.gens) == 0 {
		return
	}

	rest := genP
	for _, g := range nd.gens {
		if g == s.slackGen {
			continue
		}
		g.g.P = g.p
		rest -= g.p
	}
	if i == s.slack {
		s.slackGen.g.P = rest
	}

	var regulating int
	var span float64
	for _, g := range nd.gens {
		g.g.Q = 0
		if g.g.VoltageRegulatorOn {
			regulating++
			span += g.g.MaxQ - g.g.MinQ
		}
	}
	if regulating == 0 {
		return
	}
	for _, g := range nd.gens {
		if !g.g.VoltageRegulatorOn {
			continue
		}
		switch {
		case nd.switched && nd.atMaxQ:
			g.g.Q = g.g.MaxQ
		case nd.switched:
			g.g.Q = g.g.MinQ
		case span > 0:
			g.g.Q = genQ * (g.g.MaxQ - g.g.MinQ) / span
		default:
			g.g.Q = genQ / float64(regulating)
		}
	}
}
