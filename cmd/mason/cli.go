// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/creachadair/mason/ast"
	"github.com/creachadair/mason/internal/envconfig"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

type settings struct {
	value    bool
	compact  bool
	debug    bool
	indent   int
	maxDepth int
}

// newCLI constructs the root command, reading input from stdin when no file
// is named and writing JSON to stdout. Diagnostics go to stderr.
func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags settings
	cmd := &cobra.Command{
		Use:   "mason [file]",
		Short: "Decode a MASON document and print it as JSON",
		Long: `Decode a MASON document and print it as JSON.

The document is read from the named file, or from standard input if no file
is given. Binary strings are printed as base64-encoded JSON strings.

` + envconfig.Usage(),
		Args: cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for errors in the command line.
			cmd.SilenceUsage = true
			return run(cmd, args, flags, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.BoolVar(&flags.value, "value", false, "Parse a single value (outer object braces are required)")
	fs.BoolVar(&flags.compact, "compact", false, "Print compact JSON on a single line")
	fs.BoolVar(&flags.debug, "debug", false, "Log debug information to stderr")
	fs.IntVar(&flags.indent, "indent", 4, "Number of spaces to indent JSON output")
	fs.IntVar(&flags.maxDepth, "max-depth", ast.DefaultMaxDepth, "Maximum nesting depth (-1 for no limit)")
	return cmd
}

func run(cmd *cobra.Command, args []string, flags settings, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	envconfig.LoadConfig(logger)
	if flags.debug || envconfig.Debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	opts := ast.Options{MaxDepth: envconfig.MaxDepth}
	if cmd.Flags().Changed("max-depth") || opts.MaxDepth == 0 {
		opts.MaxDepth = flags.maxDepth
	}
	f := ast.Formatter{Indent: envconfig.Indent, Compact: flags.compact}
	if cmd.Flags().Changed("indent") || f.Indent == "" {
		if flags.indent < 0 {
			return fmt.Errorf("invalid indent %d", flags.indent)
		}
		f.Indent = strings.Repeat(" ", flags.indent)
		f.Compact = f.Compact || flags.indent == 0
	}

	name, data, err := readInput(args, stdin)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "read input", "source", name, "bytes", len(data))

	start := time.Now()
	var v ast.Value
	if flags.value {
		v, err = opts.ParseValueBytes(data)
	} else {
		v, err = opts.ParseBytes(data)
	}
	if err != nil {
		level.Debug(logger).Log("msg", "parse failed", "source", name, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	level.Debug(logger).Log("msg", "parsed input", "source", name, "elapsed", time.Since(start))

	return f.Format(stdout, v)
}

// readInput returns the name and contents of the input named by args.
func readInput(args []string, stdin io.Reader) (string, []byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], data, nil
}
