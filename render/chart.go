package render

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sheikhrachel/petridish/model"
)

// PopulationChart records the number of living cells per generation and
// plots it as a line chart.
type PopulationChart struct {
	Title string

	points plotter.XYs
}

// NewPopulationChart creates an empty chart
func NewPopulationChart(title string) *PopulationChart {
	return &PopulationChart{Title: title}
}

// Collect records the population of one generation
func (c *PopulationChart) Collect(generation int, g *model.Grid) error {
	c.points = append(c.points, plotter.XY{X: float64(generation), Y: float64(g.CountLivingCells())})
	return nil
}

// Points returns the recorded (generation, population) pairs
func (c *PopulationChart) Points() plotter.XYs {
	return c.points
}

func (c *PopulationChart) plot() (*plot.Plot, error) {
	if len(c.points) == 0 {
		return nil, errors.New("[PopulationChart] no generations collected")
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Living cells"
	p.Y.Min = 0

	line, err := plotter.NewLine(c.points)
	if err != nil {
		return nil, errors.Wrap(err, "[PopulationChart] failed to build line")
	}
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())
	return p, nil
}

// Render renders the chart in the given format (png, svg, pdf...) to w
func (c *PopulationChart) Render(w io.Writer, format string) error {
	p, err := c.plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return errors.Wrapf(err, "[PopulationChart] unsupported format %q", format)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "[PopulationChart] failed to write chart")
	}
	return nil
}

// Save writes the chart to filename; the format follows the extension
func (c *PopulationChart) Save(filename string) error {
	p, err := c.plot()
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "[PopulationChart] failed to save %s", filename)
	}
	return nil
}

// String summarises the recorded series, e.g. "gen 0-30, population 12..57"
func (c *PopulationChart) String() string {
	if len(c.points) == 0 {
		return "no generations"
	}
	lo, hi := c.points[0].Y, c.points[0].Y
	for _, pt := range c.points {
		lo = min(lo, pt.Y)
		hi = max(hi, pt.Y)
	}
	return fmt.Sprintf("gen %.0f-%.0f, population %.0f..%.0f",
		c.points[0].X, c.points[len(c.points)-1].X, lo, hi)
}

