// The signaturegen command generates Signature boilerplate for a client
// language from a TOML grammar description.
//
// Usage:
//
//	signaturegen --grammar grammar.toml --out sig_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go.nominal.dev/internal/siggen"
)

var (
	grammarPath string
	outPath     string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "signaturegen --grammar FILE [--out FILE]",
	Short:         "Generate Signature types from a grammar description",
	Args:          cobra.ExactArgs(0),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(c *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()

		g, err := siggen.Load(grammarPath)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("grammar", grammarPath).
			Int("constructors", len(g.Constructors)).
			Msg("loaded")

		src, err := siggen.Generate(g)
		if err != nil {
			return err
		}
		if outPath == "" {
			_, err = os.Stdout.Write(src)
			return err
		}
		if err := os.WriteFile(outPath, src, 0o666); err != nil {
			return err
		}
		logger.Debug().Str("out", outPath).Int("bytes", len(src)).Msg("wrote")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&grammarPath, "grammar", "", "grammar description to read")
	rootCmd.Flags().StringVar(&outPath, "out", "", "file to write (default stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagRequired("grammar")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "signaturegen:", err)
		os.Exit(1)
	}
}
