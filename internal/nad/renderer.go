package nad

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bft-labs/gridsim/internal/adapters/fs"
	logadapter "github.com/bft-labs/gridsim/internal/adapters/log"
	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/ports"
)

// Renderer draws network-area diagrams to SVG files.
// It implements ports.DiagramRenderer.
type Renderer struct {
	params Parameters
	writer ports.FileWriter
	logger ports.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFileWriter replaces the atomic file writer.
func WithFileWriter(w ports.FileWriter) Option {
	return func(r *Renderer) {
		r.writer = w
	}
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// NewRenderer creates a renderer with the given parameters.
func NewRenderer(params Parameters, opts ...Option) (*Renderer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		params: params,
		writer: fs.NewAtomicFileWriter(0),
		logger: logadapter.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render returns the SVG document of a network.
func (r *Renderer) Render(ctx context.Context, n *domain.Network) ([]byte, error) {
	g, err := buildGraph(n)
	if err != nil {
		return nil, err
	}
	width, height := r.params.canvasSize(len(g.vertices))
	if err := layout(ctx, g, r.params, float64(width), float64(height)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeSVG(&buf, n, g, r.params, width, height)
	return buf.Bytes(), nil
}

// Draw renders the network and writes the SVG to path, replacing any
// existing file. Nothing is written when rendering fails.
func (r *Renderer) Draw(ctx context.Context, n *domain.Network, path string) (int64, error) {
	data, err := r.Render(ctx, n)
	if err != nil {
		return 0, err
	}
	if err := r.writer.WriteFile(ctx, path, data); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	r.logger.Debug("diagram written",
		ports.String("path", path),
		ports.Int("bytes", len(data)),
		ports.Int("voltage_levels", len(n.VoltageLevels)),
	)
	return int64(len(data)), nil
}
