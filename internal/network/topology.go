package network

import (
	"sort"

	"github.com/bft-labs/gridsim/internal/domain"
)

// ConnectedComponents groups buses into islands over connected branches.
//
// Components are numbered by decreasing size, ties broken by the position
// of their first bus, so component 0 is the main component. Each bus's
// Component field is updated. Bus order inside a component follows the
// network's bus order.
func ConnectedComponents(n *domain.Network) [][]*domain.Bus {
	adjacency := make(map[string][]string, len(n.Buses))
	for _, br := range n.Branches {
		if !br.Connected {
			continue
		}
		adjacency[br.Bus1ID] = append(adjacency[br.Bus1ID], br.Bus2ID)
		adjacency[br.Bus2ID] = append(adjacency[br.Bus2ID], br.Bus1ID)
	}

	position := make(map[string]int, len(n.Buses))
	for i, b := range n.Buses {
		position[b.ID] = i
	}

	visited := make(map[string]bool, len(n.Buses))
	var islands [][]*domain.Bus
	for _, start := range n.Buses {
		if visited[start.ID] {
			continue
		}
		stack := []string{start.ID}
		var island []*domain.Bus
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[id] {
				continue
			}
			visited[id] = true
			b, _ := n.Bus(id)
			island = append(island, b)
			for _, nei := range adjacency[id] {
				if !visited[nei] {
					stack = append(stack, nei)
				}
			}
		}
		sort.Slice(island, func(i, j int) bool {
			return position[island[i].ID] < position[island[j].ID]
		})
		islands = append(islands, island)
	}

	// Islands were discovered in bus order, so a stable sort keeps that as
	// the tie breaker
	sort.SliceStable(islands, func(i, j int) bool {
		return len(islands[i]) > len(islands[j])
	})

	for num, island := range islands {
		for _, b := range island {
			b.Component = num
		}
	}
	return islands
}
