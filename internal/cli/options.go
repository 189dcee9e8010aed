// internal/cli/options.go
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"motifscan/internal/config"
)

// Options holds the flags of the scan and matrices commands.
type Options struct {
	// Input
	MatrixFiles []string
	Input       string
	ConfigFile  string

	// Performance
	Threads     int
	Granularity int
	Mmap        bool
	Serial      bool

	// Scoring
	Threshold float64

	// Output
	Output          string
	Format          string
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Verbose bool
}

// Flags whose explicit use overrides the config file.
const (
	flagThreads     = "threads"
	flagGranularity = "granularity"
	flagThreshold   = "threshold"
	flagMmap        = "mmap"
	flagSerial      = "serial"
	flagFormat      = "format"
)

// RegisterMatrices binds the matrix input flag.
func RegisterMatrices(cmd *cobra.Command, o *Options) {
	cmd.Flags().StringArrayVarP(&o.MatrixFiles, "matrices", "m", nil, "matrix TOML file(s), repeatable, globs allowed [*]")
}

// RegisterScan binds every scan flag. Defaults come from config.Default so
// that --help shows the values a run without a config file would use.
func RegisterScan(cmd *cobra.Command, o *Options) {
	def := config.Default()
	RegisterMatrices(cmd, o)

	f := cmd.Flags()
	f.StringVarP(&o.Input, "input", "i", "-", "FASTA input, gzip allowed, '-' for STDIN")
	f.StringVar(&o.ConfigFile, "config", "", "TOML config file (flags given explicitly win)")

	f.IntVarP(&o.Threads, flagThreads, "j", def.Threads, "worker threads (0 = all CPUs)")
	f.IntVar(&o.Granularity, flagGranularity, def.Granularity, "region size in bytes handed to a worker")
	f.BoolVar(&o.Mmap, flagMmap, def.Mmap, "memory-map the input instead of reading it")
	f.BoolVar(&o.Serial, flagSerial, def.Serial, "stream records on one thread (ordered output)")

	f.Float64Var(&o.Threshold, flagThreshold, def.Threshold, "report windows with p-value strictly below this")

	f.StringVarP(&o.Output, "output", "o", "-", "output file, '-' for STDOUT")
	f.StringVar(&o.Format, flagFormat, def.Format, "output format: tsv | jsonl")
	f.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no window matches")

	f.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	f.BoolVar(&o.Verbose, "verbose", false, "log debug detail (timings, regions)")
}

// Validate checks what cannot be checked by the flag parser.
func (o Options) Validate() error {
	if len(o.MatrixFiles) == 0 {
		return errors.New("at least one --matrices file is required")
	}
	if o.Input == "" {
		return errors.New("--input must not be empty")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the config
// file when one is given, then each flag the user set explicitly. The result
// is validated.
func Resolve(cmd *cobra.Command, o Options) (config.Config, error) {
	c := config.Default()
	if o.ConfigFile != "" {
		var err error
		if c, err = config.Load(o.ConfigFile); err != nil {
			return c, err
		}
	}
	changed := cmd.Flags().Changed
	if changed(flagThreads) {
		c.Threads = o.Threads
	}
	if changed(flagGranularity) {
		c.Granularity = o.Granularity
	}
	if changed(flagThreshold) {
		c.Threshold = o.Threshold
	}
	if changed(flagMmap) {
		c.Mmap = o.Mmap
	}
	if changed(flagSerial) {
		c.Serial = o.Serial
	}
	if changed(flagFormat) {
		c.Format = o.Format
	}
	switch {
	case o.Verbose:
		c.LogLevel = "debug"
	case o.Quiet:
		c.LogLevel = "error"
	}
	return c, c.Validate()
}
