// The lambdapi command runs lambda-Pi programs.
// With no arguments, it starts a read-eval-print loop (REPL).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go.nominal.dev/lambdapi"
	"go.nominal.dev/lambdapi/syntax"
	"go.nominal.dev/repl"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "lambdapi",
	Short:         "Run lambda-Pi programs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	},
	RunE: func(c *cobra.Command, args []string) error {
		repl.REPL(os.Stdout)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Execute every command in a lambda-Pi program",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		start := time.Now()
		if err := lambdapi.ExecProgram(c.Context(), os.Stdout, prog); err != nil {
			return err
		}
		logger.Debug().
			Int("commands", len(prog.Commands)).
			Dur("elapsed", time.Since(start)).
			Msg("program finished")
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval TERM",
	Short: "Normalize a term given as an argument",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		x, err := syntax.ParseTerm("<arg>", args[0])
		if err != nil {
			return err
		}
		return lambdapi.ExecCommand(c.Context(), os.Stdout, &syntax.ComputeCommand{X: x})
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Reprint a lambda-Pi program in canonical concrete syntax",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		prog, err := parseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(syntax.ProgramString(prog))
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start a read-eval-print loop",
	Args:  cobra.ExactArgs(0),
	RunE: func(c *cobra.Command, args []string) error {
		repl.REPL(os.Stdout)
		return nil
	},
}

func parseFile(path string) (*syntax.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := syntax.Parse(path, string(src))
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", path).Int("commands", len(prog.Commands)).Msg("parsed")
	return prog, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd, evalCmd, fmtCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lambdapi:", err)
		os.Exit(1)
	}
}
