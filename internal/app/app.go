// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"motifscan/internal/appcore"
	"motifscan/internal/cli"
	"motifscan/internal/cliutil"
	"motifscan/internal/cmdutil"
	"motifscan/internal/matrix"
	"motifscan/internal/output"
	"motifscan/internal/version"
	"motifscan/internal/writers"
)

// Exit codes.
const (
	exitOK      = 0
	exitUsage   = 2
	exitRuntime = 3
)

// exitError carries a process exit code out of a cobra RunE. A nil err means
// nothing is printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func usageErr(err error) error   { return &exitError{code: exitUsage, err: err} }
func runtimeErr(err error) error { return &exitError{code: exitRuntime, err: err} }

// RunContext executes one motifscan invocation and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRoot(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	// flag and argument errors raised by cobra itself
	_, _ = fmt.Fprintln(stderr, "error:", err)
	_, _ = fmt.Fprintln(stderr, "Run 'motifscan --help' for usage.")
	return exitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "motifscan",
		Short: "scan FASTA sequences for position weight matrix hits",
		Long: `motifscan scores every window of every FASTA record against a set of
integer position weight matrices and reports windows whose p-value is below
the threshold, in FIMO-style TSV or JSON lines.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newScanCmd(stdout, stderr), newMatricesCmd(stdout), newVersionCmd(stdout))
	return root
}

func newScanCmd(stdout, stderr io.Writer) *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "scan -m matrices.toml [-i input.fa] [-o out.tsv]",
		Short: "scan FASTA input with one or more matrices",
		Example: `  motifscan scan -m jaspar.toml -i promoters.fa -o hits.tsv
  zcat genome.fa.gz | motifscan scan -m 'motifs/*.toml' -j 8 --format jsonl
  motifscan scan -m m.toml -i big.fa --mmap --threshold 1e-4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, o, stdout, stderr)
		},
	}
	cli.RegisterScan(cmd, &o)
	return cmd
}

func newMatricesCmd(stdout io.Writer) *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "matrices -m matrices.toml",
		Short: "list the matrices a scan would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := loadMatrices(o.MatrixFiles)
			if err != nil {
				return err
			}
			return writeOut(stdout, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, "#name\twidth\tstrand\tp-values")
				for _, m := range ms {
					strand := "+"
					if m.ReverseComplement {
						strand = "-"
					}
					_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", m.Name, m.Width(), strand, len(m.PValues))
				}
			})
		},
	}
	cli.RegisterMatrices(cmd, &o)
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return writeOut(stdout, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "motifscan version %s\n", version.Version)
			})
		},
	}
}

// writeOut renders through a buffered writer; a closed pipe is not an error.
func writeOut(stdout io.Writer, render func(io.Writer)) error {
	outw := bufio.NewWriter(stdout)
	render(outw)
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return runtimeErr(err)
	}
	return nil
}

func loadMatrices(files []string) ([]*matrix.Matrix, error) {
	if len(files) == 0 {
		return nil, usageErr(errors.New("at least one --matrices file is required"))
	}
	paths, err := cliutil.ExpandPaths(files)
	if err != nil {
		return nil, usageErr(err)
	}
	ms, err := matrix.LoadFiles(paths)
	if err != nil {
		return nil, usageErr(err)
	}
	return ms, nil
}

func runScan(cmd *cobra.Command, o cli.Options, stdout, stderr io.Writer) error {
	if err := o.Validate(); err != nil {
		return usageErr(err)
	}
	cfg, err := cli.Resolve(cmd, o)
	if err != nil {
		return usageErr(err)
	}
	logger := cmdutil.NewLogger(stderr, cfg.LogLevel)
	f, err := output.ForFormat(cfg.Format)
	if err != nil {
		return usageErr(err)
	}
	matrices, err := loadMatrices(o.MatrixFiles)
	if err != nil {
		return err
	}
	logger.Debug("matrices loaded", "count", len(matrices))

	code := appcore.Run(cmd.Context(), stdout, stderr, logger, appcore.Options{
		Input:           o.Input,
		Output:          o.Output,
		Config:          cfg,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}, matrices, f)
	if code != exitOK {
		return &exitError{code: code}
	}
	return nil
}
