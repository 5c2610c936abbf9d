package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/charj-lang/charj/internal/ast"
	"github.com/charj-lang/charj/internal/config"
	"github.com/charj-lang/charj/internal/diag"
	"github.com/charj-lang/charj/internal/dump"
	"github.com/charj-lang/charj/internal/parser"
	"github.com/charj-lang/charj/internal/token"
	"github.com/charj-lang/charj/internal/tokfile"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse token stream files and print their syntax trees",
		Long: `Parse reads token stream files (YAML or JSON sequences of token records
produced by a Charj lexer) and prints one syntax tree per file.

When a file named like the token file without its ".tokens.yaml" or
".tokens.json" suffix, plus ".charj", exists next to it, diagnostics quote
that source.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().String("format", "", "Output format: sexpr or yaml (default from config)")
	cmd.Flags().Bool("no-color", false, "Disable styled diagnostics")
	cmd.Flags().Int("jobs", 0, "Files parsed at once (default from config)")

	return cmd
}

type parseResult struct {
	path   string
	source string // path reported in diagnostics
	prog   *ast.Program
	err    error
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Output.Format = v
	}
	if v, _ := cmd.Flags().GetInt("jobs"); v != 0 {
		cfg.Parse.Jobs = v
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		off := false
		cfg.Output.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Verbose)

	results := make([]parseResult, len(args))
	var g errgroup.Group
	g.SetLimit(cfg.Parse.Jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = parseFile(path)
			if results[i].err == nil {
				logger.Printf("parsed %s (%d items)", path, len(results[i].prog.Items))
			}
			return nil
		})
	}
	_ = g.Wait() // per-file failures are carried in results

	formatter := diag.NewFormatter(cmd.ErrOrStderr(), cfg.UseColor())

	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			report(formatter, cmd.ErrOrStderr(), res)
			continue
		}
		if err := printTree(cmd.OutOrStdout(), cfg.Output.Format, res, len(results) > 1, i); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Log.Verbose = true
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "charj: ", 0)
}

func parseFile(path string) parseResult {
	res := parseResult{path: path, source: sourcePath(path)}

	toks, err := tokfile.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}

	res.prog, res.err = parser.Parse(token.NewSliceSource(toks), parser.WithFilename(res.source))
	return res
}

// sourcePath returns the Charj source paired with a token file, or the token
// file itself when there is none.
func sourcePath(path string) string {
	base := path
	for _, suffix := range []string{".tokens.yaml", ".tokens.yml", ".tokens.json"} {
		if trimmed, ok := strings.CutSuffix(base, suffix); ok {
			base = trimmed
			break
		}
	}
	if base == path {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}

	src := base + ".charj"
	if _, err := os.Stat(src); err == nil {
		return src
	}
	return path
}

type diagnoser interface {
	ToDiagnostic() diag.Diagnostic
}

func report(f *diag.Formatter, w io.Writer, res parseResult) {
	var d diagnoser
	if !errors.As(res.err, &d) {
		fmt.Fprintf(w, "error: %v\n", res.err)
		return
	}

	if res.source == res.path {
		// Spans index the original source, not the token file.
		f.AddSource(res.path, "")
	}
	f.Format(d.ToDiagnostic().WithFilename(res.source))
}

func printTree(w io.Writer, format string, res parseResult, multi bool, idx int) error {
	switch format {
	case config.FormatYAML:
		out, err := dump.YAML(res.prog)
		if err != nil {
			return err
		}
		if multi {
			if idx > 0 {
				fmt.Fprintln(w, "---")
			}
			fmt.Fprintf(w, "# %s\n", res.path)
		}
		_, err = w.Write(out)
		return err
	default:
		if multi {
			fmt.Fprintf(w, ";; %s\n", res.path)
		}
		_, err := fmt.Fprintln(w, ast.Sprint(res.prog))
		return err
	}
}
