// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the png2pdf CLI, which combines PNG
// images into a single PDF using ImageMagick, libtiff and Ghostscript.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/png2pdf/internal/convert"
	"github.com/pdiddy/png2pdf/internal/logging"
	"github.com/pdiddy/png2pdf/internal/pipeline"
	"github.com/pdiddy/png2pdf/internal/toolchain"
	"github.com/pdiddy/png2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts its positional PNG arguments into one PDF.
var rootCmd = &cobra.Command{
	Use:   "png2pdf [flags] files...",
	Short: "Conversion from multiple PNG files into a single PDF file",
	Long: `png2pdf converts each PNG argument to TIFF with ImageMagick convert,
turns each TIFF into a single-page PDF with tiff2pdf, and merges the pages
into one document with Ghostscript.

Arguments that do not end in .png are skipped. Intermediate files are kept
in a timestamped directory under --tmp-root.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.Flags()
	f.StringP("output", "o", types.DefaultOutput, "output PDF file")
	f.String("tiff2pdf-options", "", "extra options passed to tiff2pdf")
	f.String("tmp-root", types.DefaultTmpRoot, "directory under which the run workspace is created")
	f.Bool("strict", false, "abort when an external tool exits non-zero")
	f.Bool("verify", false, "validate the combined PDF and count its pages")
	f.BoolP("verbose", "v", false, "log debug diagnostics to stderr")

	_ = viper.BindPFlags(f)
}

// initConfig lets PNG2PDF_* environment variables override flag defaults.
// No config file is read.
func initConfig() {
	viper.SetEnvPrefix("PNG2PDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// configFromViper assembles the run configuration from bound flags.
func configFromViper(args []string) types.Config {
	return types.Config{
		Inputs:          args,
		Output:          viper.GetString("output"),
		Tiff2PDFOptions: strings.Fields(viper.GetString("tiff2pdf-options")),
		TmpRoot:         viper.GetString("tmp-root"),
		Strict:          viper.GetBool("strict"),
		Verify:          viper.GetBool("verify"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logCfg := logging.DefaultConfig()
	if viper.GetBool("verbose") {
		logCfg.Level = "debug"
	}
	log := logging.New(logCfg)
	defer func() { _ = log.Sync() }()

	cfg := configFromViper(args)
	out := cmd.OutOrStdout()
	runner := toolchain.NewRunner(
		toolchain.WithOutput(out, cmd.ErrOrStderr()),
		toolchain.WithLogger(log),
		toolchain.WithStrict(cfg.Strict),
	)

	_, err := pipeline.Run(cmd.Context(), cfg, pipeline.Deps{
		Locator: toolchain.NewLocator(),
		Runner:  runner,
		Log:     log,
	})
	return report(out, err)
}

// report prints the user-facing message for the expected early exits, which
// terminate with status 0, and passes any other error through.
func report(w io.Writer, err error) error {
	var missing *toolchain.MissingToolError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &missing):
		fmt.Fprintln(w, missing.Message())
		return nil
	case errors.Is(err, convert.ErrNoPNG):
		fmt.Fprintln(w, "There is no PNG file to convert.")
		fmt.Fprintln(w, "Stopping the script.")
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
