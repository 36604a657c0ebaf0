package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	pkgnumeral "github.com/aretw0/numeral/pkg/numeral"
)

// Eval evaluates a single expression given as command arguments and prints the result.
// Arguments are joined with spaces, so `numeral eval X + V` and `numeral eval "X + V"` agree.
func Eval(ctx context.Context, opts Options, args []string, w io.Writer) error {
	cfg, logger, err := loadConfig(opts)
	if err != nil {
		return err
	}

	calc, closer, err := createCalculator(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer closer()

	res, err := calc.Evaluate(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res.Output)
	return err
}

// Convert prints a single numeral in the other numeral system.
func Convert(numeral string, w io.Writer) error {
	out, _, err := pkgnumeral.Convert(numeral)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
