// Package chart draws the ability score distribution as a bar chart.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rubiojr/abilityroll/stats"
)

// DefaultFile is where the chart goes when no path is given.
const DefaultFile = "ability_roll_distribution.png"

const (
	width  = 6.4 * vg.Inch
	height = 4.8 * vg.Inch
	dpi    = 300

	xMin = 0
	xMax = 21
)

// Build composes the chart: percent per value as bars, a vertical line at
// the mean, and a title carrying the iteration count.
func Build(rows []stats.Row, mean float64, iterations int) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("chart: no rows to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Ability Score Distribution (%d iterations)", iterations)
	p.X.Label.Text = "Ability Score"
	p.Y.Label.Text = "Chance (%)"
	p.X.Tick.Marker = plot.ConstantTicks(ticks(xMin, xMax, 5))
	p.Add(plotter.NewGrid())

	// Bars are laid out one unit apart starting at XMin, so gaps in the
	// observed values are filled with zero-height bars.
	lo, hi := rows[0].Value, rows[len(rows)-1].Value
	heights := make(plotter.Values, hi-lo+1)
	top := 0.0
	for _, r := range rows {
		heights[r.Value-lo] = r.Percent
		top = max(top, r.Percent)
	}
	bars, err := plotter.NewBarChart(heights, barWidth())
	if err != nil {
		return nil, fmt.Errorf("chart: bars: %w", err)
	}
	bars.XMin = float64(lo)
	bars.LineStyle.Width = 0
	bars.Color = color.Gray{Y: 0x59}
	p.Add(bars)

	meanLine, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: top * 1.05}})
	if err != nil {
		return nil, fmt.Errorf("chart: mean line: %w", err)
	}
	meanLine.Color = color.Black
	meanLine.Width = vg.Points(1)
	p.Add(meanLine)

	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min = 0
	p.Y.Max = top * 1.05
	return p, nil
}

// Save builds the chart and writes it to path. PNG output is rendered at
// 300 DPI; other extensions use the format gonum/plot associates with them.
func Save(path string, rows []stats.Row, mean float64, iterations int) error {
	p, err := Build(rows, mean, iterations)
	if err != nil {
		return err
	}
	if path == "" {
		path = DefaultFile
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" {
		if err := p.Save(width, height, path); err != nil {
			return fmt.Errorf("chart: saving %s: %w", path, err)
		}
		return nil
	}
	return savePNG(p, path)
}

func savePNG(p *plot.Plot, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("chart: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("chart: closing %s: %w", path, err)
	}
	return nil
}

// barWidth sizes bars to roughly fill one x unit of the data area.
func barWidth() vg.Length {
	return width * 0.8 / (xMax - xMin + 1)
}

func ticks(lo, hi, step int) []plot.Tick {
	var out []plot.Tick
	for v := lo; v <= hi; v++ {
		t := plot.Tick{Value: float64(v)}
		if v%step == 0 {
			t.Label = fmt.Sprintf("%d", v)
		}
		out = append(out, t)
	}
	return out
}
