package viz

import (
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/samber/lo"
)

// Series is a named column of samples.
type Series struct {
	Name   string
	Values []float64
}

// PlotSeries draws the series on one chart with a legend. Series longer
// than width are downsampled.
func PlotSeries(caption string, series []Series, width, height int) string {
	series = lo.Filter(series, func(s Series, _ int) bool { return len(s.Values) > 0 })
	if len(series) == 0 {
		return Subtle.Render("no data")
	}

	data := lo.Map(series, func(s Series, _ int) []float64 { return downsample(s.Values, width) })
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(lo.Times(len(data), func(i int) asciigraph.AnsiColor { return palette[i%len(palette)] })...),
		asciigraph.SeriesLegends(lo.Map(series, func(s Series, _ int) string { return s.Name })...),
	)
}

var palette = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := range out {
		out[i] = values[int(float64(i)*step)]
	}
	return out
}

// Column extracts column j of rows, skipping short rows.
func Column(rows [][]float64, j int) []float64 {
	return lo.FilterMap(rows, func(r []float64, _ int) (float64, bool) {
		if j < len(r) {
			return r[j], true
		}
		return 0, false
	})
}

// Path draws the XY projection of a run: the visited positions as a line
// and the waypoints as crosses.
func Path(waypoints [][2]float64, positions [][2]float64, width, height int) string {
	c := NewCanvas(width, height)
	b := EmptyBounds()
	for _, p := range append(append([][2]float64{}, waypoints...), positions...) {
		b = b.Include(p[0], p[1])
	}
	b = b.Pad(0.1)

	for i := 1; i < len(positions); i++ {
		x0, y0 := c.Project(b, positions[i-1][0], positions[i-1][1])
		x1, y1 := c.Project(b, positions[i][0], positions[i][1])
		c.DrawLine(x0, y0, x1, y1)
	}
	for _, w := range waypoints {
		c.DrawCross(c.Project(b, w[0], w[1]))
	}
	return strings.TrimRight(c.String(), "\n")
}

func sortedMetricNames(m map[string]float64) []string {
	names := lo.Keys(m)
	sort.Strings(names)
	return names
}
