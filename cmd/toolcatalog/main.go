package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/callbacks"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/llmtools/container"
	"github.com/effective-security/llmtools/encoding"
	"github.com/effective-security/llmtools/internal/sample"
	"github.com/effective-security/llmtools/pkg/llms/anthropic"
	"github.com/effective-security/llmtools/pkg/llms/openai"
	"github.com/effective-security/llmtools/pkg/llmtools"
	"github.com/effective-security/llmtools/pkg/llmutils"
	"github.com/effective-security/xlog"
	"github.com/spf13/cobra"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "toolcatalog")

var (
	version = "0.1.0"
)

// Output formats in addition to the encoding modes
const (
	FormatFunctions    = "functions"
	FormatOpenAI       = "openai"
	FormatAnthropic    = "anthropic"
	FormatDescribe     = "describe"
	FormatDescribeYAML = "describe-yaml"
	FormatExamples     = "examples"
)

type flags struct {
	config  string
	format  string
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "toolcatalog",
		Short: "Prints the catalog of LLM tools",
		Long: `toolcatalog builds the catalog of LLM tools exposed by the sample services
and prints it in the selected format.

Formats:
  json, yaml, toml   catalog document
  functions          provider neutral function definitions
  openai, anthropic  provider SDK tool parameters
  describe           tool names and descriptions for a prompt
  describe-yaml      same as describe, in YAML
  examples           fake call arguments of each tool`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := llmtools.LoadConfig(f.config)
			if err != nil {
				return errors.WithMessage(err, "failed to load config")
			}

			cat, err := buildCatalog(cmd.Context(), cfg, newCallback(errOut, f.verbose))
			if err != nil {
				return err
			}
			return printCatalog(out, cat, f.format)
		},
	}
	rootCmd.Flags().StringVarP(&f.config, "config", "c", "", "path to the config file")
	rootCmd.Flags().StringVarP(&f.format, "format", "f", encoding.ModeDefault, "output format")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "print the catalog build events")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "toolcatalog v%s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd
}

// newCallback returns the build events handler: the package logger,
// and the printer to errOut in verbose mode.
func newCallback(errOut io.Writer, verbose bool) catalog.Callback {
	var cb catalog.Callback = callbacks.NewPackageLogger(logger)
	if verbose {
		cb = callbacks.NewFanout(cb, callbacks.NewPrinter(errOut, callbacks.ModeVerbose))
	}
	return cb
}

func buildCatalog(ctx context.Context, cfg *llmtools.Config, cb catalog.Callback) (*catalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c := container.New()
	if err := sample.Register(c); err != nil {
		return nil, errors.WithMessage(err, "failed to register services")
	}
	mod, err := llmtools.ForRoot(c, cfg, llmtools.WithCallback(cb))
	if err != nil {
		return nil, err
	}
	if err = c.Init(ctx); err != nil {
		return nil, err
	}
	return mod.Catalog, nil
}

func printCatalog(out io.Writer, cat *catalog.Catalog, format string) error {
	var res string
	switch format {
	case FormatFunctions:
		res = llmutils.ToJSONIndent(cat.FunctionDefinitions())
	case FormatOpenAI:
		list, err := openai.ToTools(cat.FunctionDefinitions())
		if err != nil {
			return err
		}
		res = llmutils.ToJSONIndent(list)
	case FormatAnthropic:
		res = llmutils.ToJSONIndent(anthropic.ToTools(cat.FunctionDefinitions()))
	case FormatDescribe:
		res = cat.Describe()
	case FormatDescribeYAML:
		res = cat.DescribeYAML()
	case FormatExamples:
		res = llmutils.ToJSONIndent(encoding.Examples(cat.Tools()))
	default:
		bs, err := encoding.Marshal(format, cat.Tools())
		if err != nil {
			return err
		}
		res = string(bs)
	}

	_, err := fmt.Fprintln(out, res)
	return errors.WithStack(err)
}
