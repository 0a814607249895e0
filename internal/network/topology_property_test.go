package network

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestConnectedComponentsInvariants checks the island partition for random
// sets of open branches.
func TestConnectedComponentsInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("every bus lands in exactly one island", prop.ForAll(
		func(open []int) bool {
			n, err := CreateIEEE14()
			if err != nil {
				return false
			}
			for _, i := range open {
				n.Branches[i%len(n.Branches)].Connected = false
			}

			islands := ConnectedComponents(n)
			seen := make(map[string]bool, len(n.Buses))
			for num, island := range islands {
				for _, b := range island {
					if seen[b.ID] || b.Component != num {
						return false
					}
					seen[b.ID] = true
				}
			}
			return len(seen) == len(n.Buses)
		},
		gen.SliceOf(gen.IntRange(0, 19)),
	))

	properties.Property("islands are sorted by size", prop.ForAll(
		func(open []int) bool {
			n, err := CreateIEEE14()
			if err != nil {
				return false
			}
			for _, i := range open {
				n.Branches[i%len(n.Branches)].Connected = false
			}

			islands := ConnectedComponents(n)
			for i := 1; i < len(islands); i++ {
				if len(islands[i]) > len(islands[i-1]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 19)),
	))

	properties.Property("no open branch joins two islands", prop.ForAll(
		func(open []int) bool {
			n, err := CreateIEEE14()
			if err != nil {
				return false
			}
			for _, i := range open {
				n.Branches[i%len(n.Branches)].Connected = false
			}

			ConnectedComponents(n)
			for _, br := range n.Branches {
				if !br.Connected {
					continue
				}
				b1, _ := n.Bus(br.Bus1ID)
				b2, _ := n.Bus(br.Bus2ID)
				if b1.Component != b2.Component {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 19)),
	))

	properties.TestingRun(t)
}
