package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/gradhash/internal/image"
)

// Options holds the flag values shared by gradhash commands.
type Options struct {
	// OutputDir is the directory the image is written to.
	OutputDir string

	// Format selects the encoder and file extension.
	Format image.Format

	// DryRun renders and hashes the image without writing it.
	DryRun bool

	// Preview prints the gradient as terminal swatches.
	Preview bool

	Verbose bool
	Quiet   bool
}

// DefaultOptions returns options that write a PNG to the working directory.
func DefaultOptions() *Options {
	return &Options{
		OutputDir: ".",
		Format:    image.FormatPNG,
	}
}

// Validate checks the options for conflicts.
func (o *Options) Validate() error {
	if o.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if o.Verbose && o.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	return nil
}

// addOutputFlags registers the flags controlling where and how the image is written.
func addOutputFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.OutputDir, "output-dir", "o", opts.OutputDir, "directory to write the image to")
	fs.VarP(&opts.Format, "format", "f", fmt.Sprintf("output format (%s)", strings.Join(supportedFormats(), ", ")))
	fs.BoolVar(&opts.DryRun, "dry-run", false, "render and hash without writing a file")
	fs.BoolVar(&opts.Preview, "preview", false, "show the gradient in the terminal")
}

// addLogFlags registers the logging flags.
func addLogFlags(fs *pflag.FlagSet, opts *Options) {
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress non-error output")
}

// newLogger returns a logger writing to w at the level the options ask for.
func newLogger(w io.Writer, opts *Options) hclog.Logger {
	level := hclog.Warn
	switch {
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "gradhash",
		Output: w,
		Level:  level,
	})
}
