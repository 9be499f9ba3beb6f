// Package repl provides a read/eval/print loop for lambda-Pi.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Input is one command per line: "check e1 = e2;" or "compute e;".
// A bare term is treated as an implicit compute command, and the
// trailing semicolon may be omitted.
package repl // import "go.nominal.dev/repl"

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"

	"go.nominal.dev/lambdapi"
	"go.nominal.dev/lambdapi/syntax"
)

var interrupted = make(chan os.Signal, 1)

// REPL executes a read, eval, print loop, reading from the terminal
// and writing command results to out.
func REPL(out io.Writer) {
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	rl, err := readline.New("λΠ> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, out); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, executes, and prints one command.
//
// It returns an error (possibly readline.ErrInterrupt) only if
// readline failed or input ended. Lambda-Pi errors are printed.
func rep(rl *readline.Instance, out io.Writer) error {
	// Each command gets its own context, cancelled by SIGINT so a
	// divergent reduction can be stopped without killing the session.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-interrupted:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Note: during Readline calls, Control-C causes Readline to return
	// ErrInterrupt but does not generate a SIGINT.
	line, err := rl.Readline()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	cmd, err := ParseLine(line)
	if err != nil {
		PrintError(err)
		return nil
	}

	if err := lambdapi.ExecCommand(ctx, out, cmd); err != nil {
		PrintError(err)
	}
	return nil
}

// ParseLine parses one REPL line as a single command. A line that does
// not start with a command keyword is parsed as a term and wrapped in a
// compute command; the trailing semicolon is optional either way.
func ParseLine(line string) (syntax.Command, error) {
	trimmed := strings.TrimSpace(line)
	if word, _, _ := strings.Cut(trimmed, " "); word == "check" || word == "compute" {
		if !strings.HasSuffix(trimmed, ";") {
			trimmed += ";"
		}
		prog, err := syntax.Parse("<stdin>", trimmed)
		if err != nil {
			return nil, err
		}
		if len(prog.Commands) != 1 {
			return nil, errors.Newf("one command per line, got %d", len(prog.Commands))
		}
		return prog.Commands[0], nil
	}

	x, err := syntax.ParseTerm("<stdin>", strings.TrimSuffix(trimmed, ";"))
	if err != nil {
		return nil, err
	}
	return &syntax.ComputeCommand{X: x}, nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
