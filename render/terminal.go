package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sheikhrachel/petridish/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer prints every generation as block characters
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
	Delay       time.Duration
}

// NewTerminalRenderer renders to stdout, clearing the screen between frames
func NewTerminalRenderer(delay time.Duration) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ClearScreen: true, Delay: delay}
}

// Collect displays one generation with a status line
func (r *TerminalRenderer) Collect(generation int, g *model.Grid) error {
	if r.ClearScreen {
		r.Clear()
	}
	height, width := g.Dimensions()
	living := g.CountLivingCells()
	if _, err := fmt.Fprintf(r.Out, "Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, living, float64(living)/float64(height*width)*100); err != nil {
		return err
	}
	if err := r.Display(g); err != nil {
		return err
	}
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	return nil
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *model.Grid) error {
	height, width := g.Dimensions()
	line := make([]byte, 0, width*len(gridPosBlock)+1)
	for y := range height {
		line = line[:0]
		for x := range width {
			if g.IsAlive(y, x) {
				line = append(line, gridPosBlock...)
			} else {
				line = append(line, gridPosEmpty...)
			}
		}
		line = append(line, '\n')
		if _, err := r.Out.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
