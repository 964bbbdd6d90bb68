package tsplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a grid of axes plus the sizing and output half of the figure
// lifecycle. Axes holds the grid in row-major order; the same values are
// returned from New for direct styling.
type Figure struct {
	Axes []*plot.Plot
	Rows int
	Cols int

	colors []color.Color
}

// Grid returns the axes as rows for tiled layout.
func (f *Figure) Grid() [][]*plot.Plot {
	grid := make([][]*plot.Plot, f.Rows)
	for i := range grid {
		grid[i] = f.Axes[i*f.Cols : (i+1)*f.Cols]
	}
	return grid
}

// Size returns the figure dimensions, growing with the subplot grid.
func (f *Figure) Size() (width, height vg.Length) {
	width = vg.Length(14+2*f.Cols) * vg.Inch
	height = vg.Length(6+2*f.Rows) * vg.Inch
	return width, height
}

// Color returns the color for a given series index, cycling through the
// figure's colormap.
func (f *Figure) Color(index int) color.Color {
	return f.colors[index%len(f.colors)]
}

// AddLine plots a y series against a time sequence on the given axes, styled
// with the cycling color for the series index.
func (f *Figure) AddLine(ax *plot.Plot, index int, times []time.Time, values []float64) (*plotter.Line, error) {
	pts, err := XYs(times, values)
	if err != nil {
		return nil, err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("creating line: %w", err)
	}
	line.Color = f.Color(index)
	line.Width = vg.Points(1.5)
	ax.Add(line)
	return line, nil
}

// WriteTo draws the figure and writes it as a PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	width, height := f.Size()
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}

	grid := f.Grid()
	canvases := plot.Align(grid, tiles, dc)
	for i, row := range grid {
		for j, ax := range row {
			if ax != nil {
				ax.Draw(canvases[i][j])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

// Save draws the figure and writes it as a PNG to the given path.
func (f *Figure) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
