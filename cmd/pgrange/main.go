// Command pgrange inspects PostgreSQL binary range payloads.
//
//	pgrange decode int4range 02000000040000000100000004 00000005
//	pgrange encode int4range --start 1 --end 5
//	pgrange types
//	pgrange query --database-url postgres://localhost/test "select '[1,5)'::int4range"
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/jackc/pgrange"
	"github.com/rs/zerolog"
)

type Globals struct {
	Config string `help:"TOML configuration file." short:"c" type:"path"`
	Debug  bool   `help:"Log at debug level regardless of the configuration."`
}

type CLI struct {
	Globals

	Decode DecodeCmd `cmd:"" help:"Decode a hex encoded binary range."`
	Encode EncodeCmd `cmd:"" help:"Encode a range and print it as hex."`
	Types  TypesCmd  `cmd:"" help:"List the supported range types."`
	Query  QueryCmd  `cmd:"" help:"Run a query and print its range columns."`
}

// env is what every command runs with.
type env struct {
	cfg    Config
	logger zerolog.Logger
	stdout io.Writer
}

func (e *env) lookup(name string) (element, error) {
	canonical := e.cfg.resolveTypeName(name)
	if canonical != name {
		e.logger.Debug().Str("alias", name).Str("type", canonical).Msg("resolved type alias")
	}

	if _, ok := pgrange.LookupRangeName(canonical); !ok {
		return nil, fmt.Errorf("unknown range type %q", name)
	}
	return elements[canonical], nil
}

type DecodeCmd struct {
	Type    string   `arg:"" help:"Range type name, e.g. int4range."`
	Hex     []string `arg:"" help:"Payload in hex. Whitespace and multiple arguments are joined."`
	Decimal bool     `help:"Decode numrange bounds as shopspring decimals."`
}

func (cmd *DecodeCmd) Run(e *env) error {
	el, err := e.lookup(cmd.Type)
	if err != nil {
		return err
	}
	if cmd.Decimal && e.cfg.resolveTypeName(cmd.Type) == "numrange" {
		el = decimalElement
	}

	src, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(cmd.Hex, " ")), ""))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}

	flags, err := pgrange.DescribeFlags(src)
	if err != nil {
		return err
	}
	e.logger.Debug().Int("len", len(src)).Str("flags", flags).Msg("decoding range")

	ti, s, err := el.decode(src)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "%s\t%s\t%s\n", ti.RangeName, s, flags)
	return nil
}

// boundArgs describes a range as given on the command line. The default bounds are [).
type boundArgs struct {
	Start          *string
	End            *string
	StartExclusive bool
	EndInclusive   bool
}

type EncodeCmd struct {
	Type           string  `arg:"" help:"Range type name, e.g. int4range."`
	Start          *string `help:"Start bound value. Unbounded if omitted."`
	End            *string `help:"End bound value. Unbounded if omitted."`
	StartExclusive bool    `help:"Exclude the start bound."`
	EndInclusive   bool    `help:"Include the end bound."`
}

func (cmd *EncodeCmd) Run(e *env) error {
	el, err := e.lookup(cmd.Type)
	if err != nil {
		return err
	}

	buf, err := el.encode(boundArgs{
		Start:          cmd.Start,
		End:            cmd.End,
		StartExclusive: cmd.StartExclusive,
		EndInclusive:   cmd.EndInclusive,
	})
	if err != nil {
		return err
	}
	e.logger.Debug().Int("len", len(buf)).Msg("encoded range")

	fmt.Fprintln(e.stdout, hex.EncodeToString(buf))
	return nil
}

type TypesCmd struct{}

func (cmd *TypesCmd) Run(e *env) error {
	w := tabwriter.NewWriter(e.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "GO TYPE\tELEMENT\tRANGE\tOID\tARRAY\tOID")
	for _, ti := range pgrange.Types() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", ti.GoType, ti.ElementName, ti.RangeName, oidString(ti.RangeOID), ti.ArrayName, oidString(ti.ArrayOID))
	}
	return w.Flush()
}

func oidString(oid uint32) string {
	if oid == 0 {
		return "-"
	}
	return fmt.Sprint(oid)
}

func newParser(cli *CLI, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("pgrange"),
		kong.Description("Encode, decode and inspect PostgreSQL binary range values."),
		kong.UsageOnError(),
		// Bound values such as -1 follow --start and --end as separate arguments.
		kong.WithHyphenPrefixedParameters(true),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr, os.Exit)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.Debug {
		cfg.LogLevel = "debug"
	}

	logger, err := cfg.newLogger(stderr)
	if err != nil {
		return err
	}

	e := &env{cfg: cfg, logger: logger, stdout: stdout}
	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(e)
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "pgrange: %v\n", err)
		os.Exit(1)
	}
}
