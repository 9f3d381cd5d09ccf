package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/louisbranch/datalab/internal/particles"
	"github.com/spf13/cobra"
)

func newFieldCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Render the hero particle field offline",
	}

	cmd.AddCommand(newFieldSnapshotCmd(app))

	return cmd
}

func newFieldSnapshotCmd(app *App) *cobra.Command {
	var (
		out    string
		seed   uint64
		count  int
		width  float64
		height float64
		steps  int
		resize string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write one field frame as SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return errors.New("--out is required")
			}
			if width <= 0 || height <= 0 {
				return errors.New("--width and --height must be positive")
			}
			if steps < 0 {
				return errors.New("--steps must not be negative")
			}

			var resizeW, resizeH float64
			if resize = strings.TrimSpace(resize); resize != "" {
				var ok bool
				if resizeW, resizeH, ok = parseSize(resize); !ok {
					return fmt.Errorf("--resize %q: want WIDTHxHEIGHT with positive sizes", resize)
				}
			}

			var write func(io.Writer, particles.Frame) error
			switch strings.ToLower(filepath.Ext(out)) {
			case ".svg":
				write = particles.WriteSVG
			case ".png":
				write = particles.WritePNG
			default:
				return fmt.Errorf("unsupported output %q: use .svg or .png", out)
			}

			animator := particles.NewAnimator(particles.New(width, height,
				particles.WithCount(count),
				particles.WithSeed(seed),
			))
			for range steps {
				animator.Step()
			}
			if resize != "" {
				animator.Resize(resizeW, resizeH)
			}
			frame := animator.Snapshot()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := write(f, frame); err != nil {
				f.Close()
				return fmt.Errorf("write frame: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.Styler.OK(fmt.Sprintf(
				"wrote frame %d (%d particles, %gx%g) to %s",
				frame.Index, len(frame.Particles), frame.Width, frame.Height, out,
			)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file ending in .svg or .png")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for particle placement")
	cmd.Flags().IntVar(&count, "particles", particles.DefaultCount, "particle count")
	cmd.Flags().Float64Var(&width, "width", 1200, "field width")
	cmd.Flags().Float64Var(&height, "height", 800, "field height")
	cmd.Flags().IntVar(&steps, "steps", 0, "frames to advance before rendering")
	cmd.Flags().StringVar(&resize, "resize", "", "resize the field to WIDTHxHEIGHT after stepping, without moving particles")

	return cmd
}

// parseSize reads "WIDTHxHEIGHT" with both sizes positive.
func parseSize(value string) (float64, float64, bool) {
	ws, hs, ok := strings.Cut(strings.ToLower(value), "x")
	if !ok {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(ws), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(hs), 64)
	if errW != nil || errH != nil || !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return 0, 0, false
	}
	return w, h, true
}
