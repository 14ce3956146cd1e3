package render

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/palette"

	"github.com/sheikhrachel/petridish/model"
)

// ErrFrameSize is returned when a generation does not match the size of the first frame
var ErrFrameSize = errors.New("frame size mismatch")

const (
	defaultCellSize = 4

	deadIndex  = 0
	aliveIndex = 1
)

// GIFWriter collects generations as frames of an animated GIF
type GIFWriter struct {
	CellSize int
	Delay    time.Duration

	palette color.Palette
	anim    gif.GIF
}

// NewGIFWriter creates a writer drawing each cell as a cellSize square.
// Live cells take the middle of a red to yellow heat palette on black.
func NewGIFWriter(cellSize int, delay time.Duration) *GIFWriter {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	heat := palette.Heat(3, 1).Colors()
	return &GIFWriter{
		CellSize: cellSize,
		Delay:    delay,
		palette:  color.Palette{color.Black, heat[1]},
	}
}

// Frames returns the number of collected frames
func (w *GIFWriter) Frames() int {
	return len(w.anim.Image)
}

// Collect draws one generation as the next frame
func (w *GIFWriter) Collect(generation int, g *model.Grid) error {
	height, width := g.Dimensions()
	bounds := image.Rect(0, 0, width*w.CellSize, height*w.CellSize)
	if len(w.anim.Image) > 0 && w.anim.Image[0].Bounds() != bounds {
		return errors.Wrapf(ErrFrameSize, "[GIFWriter.Collect] generation %d is %dx%d", generation, height, width)
	}

	img := image.NewPaletted(bounds, w.palette)
	for y := range height {
		for x := range width {
			idx := uint8(deadIndex)
			if g.IsAlive(y, x) {
				idx = aliveIndex
			}
			for py := y * w.CellSize; py < (y+1)*w.CellSize; py++ {
				row := img.Pix[py*img.Stride:]
				for px := x * w.CellSize; px < (x+1)*w.CellSize; px++ {
					row[px] = idx
				}
			}
		}
	}

	w.anim.Image = append(w.anim.Image, img)
	// GIF delays are in hundredths of a second
	w.anim.Delay = append(w.anim.Delay, int(w.Delay/(10*time.Millisecond)))
	return nil
}

// Encode writes the animation, looping forever
func (w *GIFWriter) Encode(out io.Writer) error {
	if len(w.anim.Image) == 0 {
		return errors.New("[GIFWriter.Encode] no frames collected")
	}
	w.anim.LoopCount = 0
	if err := gif.EncodeAll(out, &w.anim); err != nil {
		return errors.Wrap(err, "[GIFWriter.Encode] failed to encode gif")
	}
	return nil
}

// Save encodes the animation to filename
func (w *GIFWriter) Save(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[GIFWriter.Save] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "[GIFWriter.Save] failed to close file: %+v", filename)
		}
	}()

	return w.Encode(f)
}
