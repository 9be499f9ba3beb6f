package lambdapi

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"go.nominal.dev/lambdapi/syntax"
	"go.nominal.dev/nominal"
)

// ExecProgram executes prog's commands in order, writing one line of
// output per command to out. Execution stops at the first conversion
// error, failed check, or cancellation.
func ExecProgram(ctx context.Context, out io.Writer, prog *syntax.Program) error {
	for _, cmd := range prog.Commands {
		if err := ExecCommand(ctx, out, cmd); err != nil {
			return err
		}
	}
	return nil
}

// ExecCommand executes a single command.
func ExecCommand(ctx context.Context, out io.Writer, cmd syntax.Command) error {
	scope := nominal.EmptyScope()
	switch cmd := cmd.(type) {
	case *syntax.ComputeCommand:
		t, err := FromSyntax(scope, nil, cmd.X)
		if err != nil {
			return err
		}
		nf, err := Nf(ctx, scope, t)
		if err != nil {
			return err
		}
		raw, err := ToSyntax(DefaultIdent, nf)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, syntax.TermString(raw))
		return nil

	case *syntax.CheckCommand:
		l, err := FromSyntax(scope, nil, cmd.L)
		if err != nil {
			return err
		}
		r, err := FromSyntax(scope, nil, cmd.R)
		if err != nil {
			return err
		}
		eq, err := Equiv(ctx, scope, l, r)
		if err != nil {
			return err
		}
		if !eq {
			return errors.Newf("%v: check failed: %s is not %s",
				cmd.Keyword, syntax.TermString(cmd.L), syntax.TermString(cmd.R))
		}
		fmt.Fprintln(out, "ok")
		return nil

	default:
		return errors.Newf("unexpected command %T", cmd)
	}
}
