// Command rut validates, formats, generates and analyses Chilean RUN/RUT
// identifiers from the command line.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"rutkit/pkg/rut"
)

var errInvalid = errors.New("one or more identifiers are invalid")

// CLI is the command tree.
type CLI struct {
	Validate   ValidateCmd   `cmd:"" help:"Validate identifiers; exits non-zero if any is invalid"`
	CheckDigit CheckDigitCmd `cmd:"" name:"check-digit" help:"Compute the check digit of a body"`
	Format     FormatCmd     `cmd:"" help:"Render an identifier as 12.345.678-5"`
	Unformat   UnformatCmd   `cmd:"" help:"Render an identifier as 123456785"`
	Generate   GenerateCmd   `cmd:"" help:"Generate random valid identifiers"`
	Age        AgeCmd        `cmd:"" help:"Estimate birth year, month and age"`
}

type ValidateCmd struct {
	RUTs  []string `arg:"" name:"rut" help:"Identifiers, formatted or not"`
	Quiet bool     `short:"q" help:"Only set the exit status"`
}

func (c *ValidateCmd) Run(ctx *kong.Context) error {
	failed := false
	for _, in := range c.RUTs {
		valid := rut.Validate(in)
		if !valid {
			failed = true
		}
		if !c.Quiet {
			status := "valid"
			if !valid {
				status = "invalid"
			}
			fmt.Fprintf(ctx.Stdout, "%s\t%s\n", in, status)
		}
	}
	if failed {
		return errInvalid
	}
	return nil
}

type CheckDigitCmd struct {
	Body string `arg:"" help:"Body without check digit; dots allowed"`
}

func (c *CheckDigitCmd) Run(ctx *kong.Context) error {
	dv := rut.CheckDigit(c.Body)
	if dv == "" {
		return fmt.Errorf("body %q must contain only digits and dots", c.Body)
	}
	fmt.Fprintln(ctx.Stdout, dv)
	return nil
}

type FormatCmd struct {
	RUT  string `arg:"" help:"Identifier including its check digit"`
	Zero bool   `short:"z" help:"Zero-pad the body to 10 digits"`
}

func (c *FormatCmd) Run(ctx *kong.Context) error {
	fmt.Fprintln(ctx.Stdout, rut.Format(c.RUT, c.Zero))
	return nil
}

type UnformatCmd struct {
	RUT  string `arg:"" help:"Identifier including its check digit"`
	Zero bool   `short:"z" help:"Zero-pad to 11 characters"`
}

func (c *UnformatCmd) Run(ctx *kong.Context) error {
	fmt.Fprintln(ctx.Stdout, rut.Unformat(c.RUT, c.Zero))
	return nil
}

type GenerateCmd struct {
	Count int `short:"n" default:"1" help:"How many identifiers to generate"`
	Min   int `default:"1" help:"Lowest leading segment"`
	Max   int `default:"27" help:"Highest leading segment"`
}

func (c *GenerateCmd) Run(ctx *kong.Context) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Min < 0 || c.Min > c.Max {
		return fmt.Errorf("invalid range %d..%d", c.Min, c.Max)
	}
	for _, r := range rut.Generate(c.Count, rut.Range{Min: c.Min, Max: c.Max}) {
		fmt.Fprintln(ctx.Stdout, r)
	}
	return nil
}

type AgeCmd struct {
	RUT string `arg:"" help:"Identifier including its check digit"`
	At  string `help:"Reference month as YYYY-MM (default: current month)"`
}

func (c *AgeCmd) Run(ctx *kong.Context) error {
	now := time.Now()
	if c.At != "" {
		t, err := time.Parse("2006-01", c.At)
		if err != nil {
			return fmt.Errorf("invalid --at %q: want YYYY-MM", c.At)
		}
		now = t
	}
	est, err := rut.EstimateAgeAt(c.RUT, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "age=%d year=%d month=%d\n", est.Age, est.Year, est.Month)
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("rut"),
		kong.Description("Chilean RUN/RUT toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(ctx)
	if errors.Is(err, errInvalid) {
		os.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
