package nad

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/bft-labs/gridsim/internal/domain"
)

const (
	nodeRadius     = 14
	busRingStep    = 4
	windingRadius  = 7
	infoDistance   = 40
	arrowLength    = 6
	labelOffset    = 10
	legendLineStep = 13
)

const stylesheet = `
.nad-edge line, .nad-edge polyline {stroke-width: 2; fill: none}
.nad-disconnected line, .nad-disconnected polyline {stroke-dasharray: 6,4; stroke: #a0a0a0}
.nad-winding {fill: none; stroke-width: 2}
.nad-vl circle.nad-node {stroke: #ffffff; stroke-width: 2}
.nad-arrow-in {fill: #2b7bba}
.nad-arrow-out {fill: #c0392b}
.nad-edge-info, .nad-edge-label, .nad-label, .nad-legend {font: 9px sans-serif; fill: #303030}
.nad-edge-label {font-style: italic}
.nad-label {font-size: 11px; font-weight: bold}
.nad-vl0to30 {stroke: #a0a0a0; fill: #a0a0a0}
.nad-vl30to50 {stroke: #ff8290; fill: #ff8290}
.nad-vl50to70 {stroke: #a020f0; fill: #a020f0}
.nad-vl70to120 {stroke: #ff8c00; fill: #ff8c00}
.nad-vl120to180 {stroke: #00afae; fill: #00afae}
.nad-vl180to300 {stroke: #228b22; fill: #228b22}
.nad-vl300to500 {stroke: #ff0000; fill: #ff0000}
.nad-vl500to1000 {stroke: #0000ff; fill: #0000ff}
`

// voltageClass returns the CSS class of a nominal voltage band.
func voltageClass(kV float64) string {
	bands := []struct {
		upper float64
		class string
	}{
		{30, "nad-vl0to30"},
		{50, "nad-vl30to50"},
		{70, "nad-vl50to70"},
		{120, "nad-vl70to120"},
		{180, "nad-vl120to180"},
		{300, "nad-vl180to300"},
		{500, "nad-vl300to500"},
	}
	for _, b := range bands {
		if kV < b.upper {
			return b.class
		}
	}
	return "nad-vl500to1000"
}

func class(names ...string) string {
	return `class="` + strings.Join(names, " ") + `"`
}

func format(v float64, precision int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func px(v float64) int {
	return int(math.Round(v))
}

// point is a canvas position.
type point struct{ x, y float64 }

func (a point) add(b point) point     { return point{a.x + b.x, a.y + b.y} }
func (a point) scale(f float64) point { return point{a.x * f, a.y * f} }
func (a point) perp() point           { return point{-a.y, a.x} }
func (a point) toward(b point) point  { return unit(point{b.x - a.x, b.y - a.y}) }
func (a point) dist(b point) float64  { return math.Hypot(b.x-a.x, b.y-a.y) }

func (a point) lerp(b point, f float64) point {
	return point{a.x + (b.x-a.x)*f, a.y + (b.y-a.y)*f}
}

func unit(p point) point {
	l := math.Hypot(p.x, p.y)
	if l == 0 {
		return point{1, 0}
	}
	return point{p.x / l, p.y / l}
}

// writeSVG draws a laid out graph.
func writeSVG(w io.Writer, n *domain.Network, g *graph, p Parameters, width, height int) {
	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Title(p.label(n.ID, n.Name))
	st := n.Stats()
	canvas.Desc(fmt.Sprintf("%d voltage levels, %d buses, %d lines, %d transformers",
		st.VoltageLevels, st.Buses, st.Lines, st.Transformers))
	canvas.Style("text/css", stylesheet)

	canvas.Gid("edges")
	for _, e := range g.edges {
		drawEdge(canvas, g, e, p)
	}
	canvas.Gend()

	canvas.Gid("voltage-levels")
	for _, v := range g.vertices {
		drawVertex(canvas, v, p)
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, v := range g.vertices {
		drawLabel(canvas, v, p)
	}
	canvas.Gend()

	canvas.End()
}

// endpoints returns the drawn ends of an edge and its bend point, shifted
// sideways by the parallel offset.
func endpoints(g *graph, e *edge) (a, mid, b point) {
	va, vb := g.vertices[e.a], g.vertices[e.b]
	a, b = point{va.x, va.y}, point{vb.x, vb.y}
	mid = a.lerp(b, 0.5)
	if e.offset != 0 {
		mid = mid.add(a.toward(b).perp().scale(e.offset))
	}
	return a, mid, b
}

func drawEdge(canvas *svg.SVG, g *graph, e *edge, p Parameters) {
	br := e.br
	a, mid, b := endpoints(g, e)
	classA := voltageClass(g.vertices[e.a].vl.NominalV)
	classB := voltageClass(g.vertices[e.b].vl.NominalV)

	groupClass := []string{"nad-edge"}
	if !br.Connected {
		groupClass = append(groupClass, "nad-disconnected")
	}
	canvas.Group(`id="`+br.ID+`"`, class(groupClass...))
	canvas.Title(fmt.Sprintf("%s %s: I1 %s A, I2 %s A", br.Kind, p.label(br.ID, br.Name),
		format(br.I1, p.CurrentValuePrecision), format(br.I2, p.CurrentValuePrecision)))

	// Each half takes the color of its own side
	if br.Kind == domain.BranchTransformer {
		dir := a.toward(b)
		c1 := mid.add(dir.scale(-windingRadius / 2.0))
		c2 := mid.add(dir.scale(windingRadius / 2.0))
		half(canvas, a, c1.add(dir.scale(-windingRadius)), classA)
		half(canvas, c2.add(dir.scale(windingRadius)), b, classB)
		canvas.Circle(px(c1.x), px(c1.y), windingRadius, class("nad-winding", classA))
		canvas.Circle(px(c2.x), px(c2.y), windingRadius, class("nad-winding", classB))
	} else {
		half(canvas, a, mid, classA)
		half(canvas, mid, b, classB)
	}

	if br.Connected {
		edgeInfo(canvas, a, mid, br.P1, p)
		edgeInfo(canvas, b, mid, br.P2, p)
	}
	if p.EdgeNameDisplayed {
		dir := a.toward(b)
		at := mid.add(dir.perp().scale(labelOffset + windingRadius))
		text(canvas, at, dir, p.label(br.ID, br.Name), "nad-edge-label", p)
	}
	canvas.Gend()
}

func half(canvas *svg.SVG, from, to point, voltage string) {
	canvas.Line(px(from.x), px(from.y), px(to.x), px(to.y), class(voltage))
}

// edgeInfo draws the active power entering the branch at one end, with an
// arrow pointing into the branch for positive values.
func edgeInfo(canvas *svg.SVG, end, mid point, pMW float64, p Parameters) {
	if math.IsNaN(pMW) {
		return
	}
	dir := end.toward(mid)
	at := end.add(dir.scale(math.Min(infoDistance, end.dist(mid)*0.6)))

	arrow := dir
	arrowClass := "nad-arrow-out"
	if pMW < 0 {
		arrow = dir.scale(-1)
		arrowClass = "nad-arrow-in"
	}
	tip := at.add(arrow.scale(arrowLength))
	back := at.add(arrow.scale(-arrowLength / 2))
	side := arrow.perp().scale(arrowLength / 2)
	l, r := back.add(side), back.add(side.scale(-1))
	canvas.Polygon([]int{px(tip.x), px(l.x), px(r.x)}, []int{px(tip.y), px(l.y), px(r.y)}, class(arrowClass))

	text(canvas, at.add(dir.perp().scale(labelOffset)), dir, format(pMW, p.PowerValuePrecision), "nad-edge-info", p)
}

// text writes a label, rotated to follow dir when edge info goes along
// edges. Rotation is kept within +-90 degrees so text never reads upside
// down.
func text(canvas *svg.SVG, at, dir point, s, cls string, p Parameters) {
	x, y := px(at.x), px(at.y)
	if !p.EdgeInfoAlongEdge {
		canvas.Text(x, y, s, class(cls), `text-anchor="middle"`)
		return
	}
	deg := math.Atan2(dir.y, dir.x) * 180 / math.Pi
	if deg > 90 {
		deg -= 180
	} else if deg < -90 {
		deg += 180
	}
	canvas.Text(x, y, s, class(cls), `text-anchor="middle"`,
		fmt.Sprintf(`transform="rotate(%d %d %d)"`, px(deg), x, y))
}

func drawVertex(canvas *svg.SVG, v *vertex, p Parameters) {
	x, y := px(v.x), px(v.y)
	voltage := voltageClass(v.vl.NominalV)
	canvas.Group(`id="`+v.vl.ID+`"`, class("nad-vl", voltage))
	canvas.Title(p.label(v.vl.ID, v.vl.Name))
	canvas.Circle(x, y, nodeRadius, class("nad-node", voltage))
	// one ring per extra bus
	for i := 1; i < len(v.buses); i++ {
		canvas.Circle(x, y, nodeRadius-i*busRingStep, class("nad-node", voltage))
	}
	canvas.Gend()
}

func drawLabel(canvas *svg.SVG, v *vertex, p Parameters) {
	x := px(v.x)
	y := px(v.y) + nodeRadius + legendLineStep
	canvas.Text(x, y, p.label(v.vl.ID, v.vl.Name), class("nad-label"), `text-anchor="middle"`)

	if p.SubstationDescriptionDisplayed && v.sub != nil {
		y += legendLineStep
		canvas.Text(x, y, p.label(v.sub.ID, v.sub.Name), class("nad-legend"), `text-anchor="middle"`)
	}
	if !p.BusLegend {
		return
	}
	for _, b := range v.buses {
		if !b.Solved() {
			continue
		}
		y += legendLineStep
		legend := fmt.Sprintf("%s kV / %s°",
			format(b.V*v.vl.NominalV, p.VoltageValuePrecision),
			format(b.Angle, p.AngleValuePrecision))
		canvas.Text(x, y, legend, class("nad-legend"), `text-anchor="middle"`)
	}
}
