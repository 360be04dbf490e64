package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/gradhash/internal/colour"
	"github.com/jmylchreest/gradhash/internal/image"
)

// previewWidth is the width in characters of one preview swatch.
const previewWidth = 2

// runGenerate renders the gradient described by args and saves it under its hash.
func runGenerate(cmd *cobra.Command, args []string, opts *Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr(), opts)

	start, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("start colour: %w", err)
	}
	end, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("end colour: %w", err)
	}
	blocks, err := parseBlockCount(args[2])
	if err != nil {
		return err
	}

	logger.Debug("rendering gradient", "start", start.Hex(), "end", end.Hex(), "blocks", blocks)
	if residual := image.CanvasSize % blocks; residual != 0 {
		logger.Info("canvas is not a multiple of the block count, right and bottom edges stay transparent",
			"canvas", image.CanvasSize, "blocks", blocks, "residual", residual)
	}

	canvas, gradient, err := image.Render(start, end, blocks)
	if err != nil {
		return err
	}

	if opts.Preview {
		writePreview(cmd.ErrOrStderr(), gradient, blocks)
	}

	if opts.DryRun {
		hash, err := image.AverageHash(canvas)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.OutputDir, image.Filename(hash, opts.Format))
		logger.Info("dry run, not writing image", "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	path, err := image.Save(canvas, opts.OutputDir, opts.Format)
	if err != nil {
		return err
	}

	logger.Info("wrote image", "path", path, "format", opts.Format)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// parseBlockCount parses the blocks-per-vector argument.
func parseBlockCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", colour.ErrInvalidBlockCount, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d (must be > 0)", colour.ErrInvalidBlockCount, n)
	}
	if n > image.CanvasSize {
		return 0, fmt.Errorf("%w: %d (must be <= %d, the canvas width)", colour.ErrInvalidBlockCount, n, image.CanvasSize)
	}
	return n, nil
}

// writePreview prints the gradient preview when w is a terminal.
func writePreview(w io.Writer, g colour.Gradient, n int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = 0
	}
	fmt.Fprint(w, previewText(g, n, width))
}

// previewText renders the gradient grid followed by a start → end line.
// Grids wider than width columns, or any grid when width is unknown (<= 0),
// are reduced to the start → end line.
func previewText(g colour.Gradient, n, width int) string {
	if len(g) == 0 {
		return ""
	}

	var text string
	if width > 0 && n*previewWidth <= width {
		text = colour.GridPreview(g, n, previewWidth)
	}
	return text + fmt.Sprintln(colour.FormatColourWithPreview(g[0], previewWidth), "→", colour.FormatColourWithPreview(g[len(g)-1], previewWidth))
}
