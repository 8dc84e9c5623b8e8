package chartplotter

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// Width and Height are the size of the rendered chart.
	Width  = vg.Points(600)
	Height = vg.Points(250)

	seriesColor = color.RGBA{R: 0x88, G: 0x84, B: 0xd8, A: 0xff}
)

// MakeDistributionPlot renders xy to filename. Discrete data is drawn as a
// bar chart with one bar per x, continuous data as a line. The output format
// follows the file extension (png, pdf, svg, ...).
func MakeDistributionPlot(xy plotter.XYer, discrete bool, title, filename string) error {
	if xy.Len() == 0 {
		return fmt.Errorf("nothing to plot for %q", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "scaled density"
	p.Add(plotter.NewGrid())

	if discrete {
		if err := addBars(p, xy); err != nil {
			return err
		}
		p.Y.Label.Text = "scaled probability"
	} else {
		line, err := plotter.NewLine(xy)
		if err != nil {
			return fmt.Errorf("building line: %w", err)
		}
		line.LineStyle.Color = seriesColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if format == "" {
		return fmt.Errorf("cannot infer image format from %q", filename)
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return w.Close()
}

func addBars(p *plot.Plot, xy plotter.XYer) error {
	values := make(plotter.Values, xy.Len())
	names := make([]string, xy.Len())
	for i := range values {
		x, y := xy.XY(i)
		values[i] = y
		names[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return fmt.Errorf("building bars: %w", err)
	}
	bars.Color = seriesColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return nil
}
