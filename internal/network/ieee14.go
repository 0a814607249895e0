package network

import "github.com/bft-labs/gridsim/internal/domain"

// ieee14 is the IEEE 14-bus test case (American Electric Power, 1962).
var ieee14 = caseSpec{
	id:      "ieee14cdf",
	name:    "IEEE 14 bus",
	baseMVA: domain.DefaultBaseMVA,
	slack:   1,
	buses: []busSpec{
		{num: 1, nominalV: 135},
		{num: 2, nominalV: 135, pd: 21.7, qd: 12.7},
		{num: 3, nominalV: 135, pd: 94.2, qd: 19.0},
		{num: 4, nominalV: 135, pd: 47.8, qd: -3.9},
		{num: 5, nominalV: 135, pd: 7.6, qd: 1.6},
		{num: 6, nominalV: 12, pd: 11.2, qd: 7.5},
		{num: 7, nominalV: 14},
		{num: 8, nominalV: 18},
		{num: 9, nominalV: 12, pd: 29.5, qd: 16.6, bs: 19},
		{num: 10, nominalV: 12, pd: 9.0, qd: 5.8},
		{num: 11, nominalV: 12, pd: 3.5, qd: 1.8},
		{num: 12, nominalV: 12, pd: 6.1, qd: 1.6},
		{num: 13, nominalV: 12, pd: 13.5, qd: 5.8},
		{num: 14, nominalV: 12, pd: 14.9, qd: 5.0},
	},
	branches: []branchSpec{
		{from: 1, to: 2, r: 0.01938, x: 0.05917, b: 0.0528},
		{from: 1, to: 5, r: 0.05403, x: 0.22304, b: 0.0492},
		{from: 2, to: 3, r: 0.04699, x: 0.19797, b: 0.0438},
		{from: 2, to: 4, r: 0.05811, x: 0.17632, b: 0.0340},
		{from: 2, to: 5, r: 0.05695, x: 0.17388, b: 0.0346},
		{from: 3, to: 4, r: 0.06701, x: 0.17103, b: 0.0128},
		{from: 4, to: 5, r: 0.01335, x: 0.04211},
		{from: 4, to: 7, x: 0.20912, ratio: 0.978},
		{from: 4, to: 9, x: 0.55618, ratio: 0.969},
		{from: 5, to: 6, x: 0.25202, ratio: 0.932},
		{from: 6, to: 11, r: 0.09498, x: 0.19890},
		{from: 6, to: 12, r: 0.12291, x: 0.25581},
		{from: 6, to: 13, r: 0.06615, x: 0.13027},
		{from: 7, to: 8, x: 0.17615},
		{from: 7, to: 9, x: 0.11001},
		{from: 9, to: 10, r: 0.03181, x: 0.08450},
		{from: 9, to: 14, r: 0.12711, x: 0.27038},
		{from: 10, to: 11, r: 0.08205, x: 0.19207},
		{from: 12, to: 13, r: 0.22092, x: 0.19988},
		{from: 13, to: 14, r: 0.17093, x: 0.34802},
	},
	gens: []genSpec{
		{bus: 1, pg: 232.4, qmax: 10, qmin: 0, vg: 1.060, pmax: 332.4},
		{bus: 2, pg: 40.0, qmax: 50, qmin: -40, vg: 1.045, pmax: 140},
		{bus: 3, pg: 0, qmax: 40, qmin: 0, vg: 1.010, pmax: 100},
		{bus: 6, pg: 0, qmax: 24, qmin: -6, vg: 1.070, pmax: 100},
		{bus: 8, pg: 0, qmax: 24, qmin: -6, vg: 1.090, pmax: 100},
	},
}

// CreateIEEE14 returns the IEEE 14-bus test network.
func CreateIEEE14() (*domain.Network, error) {
	return ieee14.build()
}
