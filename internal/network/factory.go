package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/bft-labs/gridsim/internal/domain"
)

// DefaultCase is the network produced when no case is configured.
const DefaultCase = "ieee300"

var cases = map[string]func() (*domain.Network, error){
	"ieee14":  CreateIEEE14,
	"ieee300": CreateIEEE300,
}

// Cases returns the names of the built-in networks, sorted.
func Cases() []string {
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factory implements ports.NetworkFactory for the built-in cases.
type Factory struct {
	name string
}

// NewFactory returns a factory for the named case.
// An empty name selects DefaultCase.
func NewFactory(name string) (*Factory, error) {
	if name == "" {
		name = DefaultCase
	}
	if _, ok := cases[name]; !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", domain.ErrUnknownNetwork, name, Cases())
	}
	return &Factory{name: name}, nil
}

// Name returns the case this factory builds.
func (f *Factory) Name() string {
	return f.name
}

// Create builds a fresh network instance.
func (f *Factory) Create(ctx context.Context) (*domain.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := cases[f.name]()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", f.name, err)
	}
	ConnectedComponents(n)
	return n, nil
}
