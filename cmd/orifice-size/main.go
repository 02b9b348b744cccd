// Command orifice-size sizes orifice plates from the command line
//
//	orifice-size size -q 0.02 -D 0.15 -dp 50000
//	orifice-size flow -D 0.0266 -d 0.0127 -dp 24750.74
//	orifice-size dp -q 0.02 -d 0.0641 -D 0.15
//	orifice-size corrections -D 0.15 -tap integral
//	orifice-size tables
//	orifice-size version
//
// All quantities are SI: m, Pa, m³/s, kg/m³.
// Settings come from ORIFICE_SOLVER_TOLERANCE, ORIFICE_SOLVER_MAX_ITER, ORIFICE_TABLES_FILE
// and ORIFICE_TABLES_STRICT. Exit status is 0 on success, 1 when the calculation or its
// input is rejected, 2 on usage errors and 3 when the tables cannot be loaded.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/version"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/config"
	perr "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/errors"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
	pnet "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http/bind"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/domain"
	sizingsvc "github.com/josuemoraisgh/EININDII06-OrificePlate/internal/services/api/sizing/service"
)

const exitUsage = 2

// errUsage marks failures that should print usage and exit 2
var errUsage = errors.New("usage")

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }
func (e usageError) Is(t error) bool { return t == errUsage }

func usagef(format string, a ...any) error { return usageError{msg: fmt.Sprintf(format, a...)} }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], config.New().Prefix("ORIFICE_"), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env bundles what every subcommand needs
type env struct {
	cfg    config.Conf
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e env, args []string) error
}

func commands() []command {
	return []command{
		{"size", "find beta and the orifice diameter for a target flow", runSize},
		{"flow", "flow through a known plate (beta or orifice diameter)", runFlow},
		{"dp", "differential pressure for a flow and orifice diameter", runDeltaP},
		{"corrections", "correction factors and effective discharge coefficient", runCorrections},
		{"tables", "print the active correction tables", runTables},
		{"version", "print build information", runVersion},
	}
}

func run(ctx context.Context, args []string, cfg config.Conf, stdout, stderr io.Writer) int {
	logger.Init(logger.Options{
		Level:     cfg.Prefix("LOG_").MayString("LEVEL", "warn"),
		Format:    "console",
		Writer:    stderr,
		Component: "orifice-size",
	})

	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		printUsage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return 0
	}

	e := env{cfg: cfg, stdout: stdout, stderr: stderr}
	for _, c := range commands() {
		if c.name != args[0] {
			continue
		}
		err := c.run(ctx, e, args[1:])
		switch {
		case err == nil:
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			_, _ = fmt.Fprintf(stderr, "%s: %v\n", c.name, err)
			return exitUsage
		default:
			_, _ = fmt.Fprintf(stderr, "%s: %s\n", c.name, describe(err))
			return perr.ExitCode(err)
		}
	}
	_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
	printUsage(stderr)
	return exitUsage
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: orifice-size <command> [flags]")
	_, _ = fmt.Fprintln(w)
	for _, c := range commands() {
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", c.name, c.summary)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "run 'orifice-size <command> -h' for flags")
}

// describe renders a coded error as "message (field)"
func describe(err error) string {
	w := perr.WireFrom(err)
	if w.Field != "" {
		return fmt.Sprintf("%s (%s)", w.Message, w.Field)
	}
	if e, ok := perr.As(err); ok && e.Unwrap() != nil {
		return e.Error()
	}
	return w.Message
}

// service builds the sizing service from ORIFICE_* settings
func service(cfg config.Conf) (domain.ServicePort, error) {
	tables, err := sizingsvc.LoadTables(cfg)
	if err != nil {
		return nil, err
	}
	return sizingsvc.New(tables, sizingsvc.ConfigFrom(cfg), nil), nil
}

// quantity is a float64 flag that remembers whether it was set
type quantity struct {
	v   float64
	set bool
}

func (f *quantity) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *quantity) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	f.v, f.set = v, true
	return nil
}

// orDefault fills an unset quantity
func (f *quantity) orDefault(v float64) {
	if !f.set {
		f.v, f.set = v, true
	}
}

func (f *quantity) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.v
	return &v
}

// common flags shared by the calculation commands
type common struct {
	rho      *quantity
	c        *float64
	eps      *float64
	tap      *string
	material *string
	orifice  *string
	up       *quantity
	down     *quantity
	example  *bool
	asJSON   *bool
}

func newFlagSet(name string, e env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func quantityFlag(fs *flag.FlagSet, name, usage string) *quantity {
	v := &quantity{}
	fs.Var(v, name, usage)
	return v
}

func commonFlags(fs *flag.FlagSet) *common {
	return &common{
		rho:      quantityFlag(fs, "rho", "fluid density, default 1000 kg/m3"),
		c:        fs.Float64("c", 0.61, "base discharge coefficient"),
		eps:      fs.Float64("eps", 1, "expansibility factor, 0 < eps <= 1"),
		tap:      fs.String("tap", "", "tap type (flange, corner, radius, vena, pipe, integral)"),
		material: fs.String("material", "", "plate material (steel, stainless steel, cast iron, ...)"),
		orifice:  fs.String("orifice", "", "orifice type (concentric, eccentric, segmental, ...)"),
		up:       quantityFlag(fs, "up", "upstream straight run, m, default 10 D"),
		down:     quantityFlag(fs, "down", "downstream straight run, m, default 5 D"),
		example:  fs.Bool("example", false, "fill unset inputs with the worked example"),
		asJSON:   fs.Bool("json", false, "print the response envelope as JSON"),
	}
}

func (c *common) fluid() domain.Fluid {
	c.rho.orDefault(1000)
	return domain.Fluid{Density: c.rho.v, DischargeCoefficient: *c.c, Epsilon: *c.eps}
}

func (c *common) installation() domain.Installation {
	return domain.Installation{
		Upstream:   c.up.ptr(),
		Downstream: c.down.ptr(),
		Tap:        *c.tap,
		Material:   *c.material,
		Orifice:    *c.orifice,
	}
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usagef("%v", err)
	}
	if fs.NArg() > 0 {
		return usagef("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

// require reports the first unset quantity flag as a usage error
func require(fs *flag.FlagSet, names ...string) error {
	for _, n := range names {
		if q, ok := fs.Lookup(n).Value.(*quantity); ok && !q.set {
			return usagef("-%s is required (or use -example)", n)
		}
	}
	return nil
}

// emit prints out as a report, or as a JSON envelope with -json
func emit(e env, asJSON bool, out any, report func(io.Writer)) error {
	if !asJSON {
		report(e.stdout)
		return nil
	}
	_, wire := pnet.OK(out, "")
	return writeJSON(e.stdout, wire)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail prints a JSON error envelope when -json is set, then returns err for the exit code
func fail(e env, asJSON bool, err error) error {
	if asJSON && !errors.Is(err, errUsage) {
		_, wire := pnet.Error(err, "")
		_ = writeJSON(e.stdout, wire)
	}
	return err
}

func runSize(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("size", e)
	q := quantityFlag(fs, "q", "target volumetric flow, m3/s")
	d := quantityFlag(fs, "D", "pipe internal diameter, m")
	dp := quantityFlag(fs, "dp", "differential pressure at the target flow, Pa")
	c := commonFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *c.example {
		q.orDefault(0.02)
		d.orDefault(0.15)
		dp.orDefault(50000)
		c.up.orDefault(1.5)
		c.down.orDefault(0.75)
	}
	if err := require(fs, "q", "D", "dp"); err != nil {
		return err
	}

	in := domain.SizeInput{
		FlowRate:     q.v,
		PipeDiameter: d.v,
		DeltaP:       dp.v,
		Fluid:        c.fluid(),
		Installation: c.installation(),
	}
	if err := bind.Struct(in); err != nil {
		return fail(e, *c.asJSON, err)
	}
	svc, err := service(e.cfg)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	out, err := svc.Size(ctx, in)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	return emit(e, *c.asJSON, out, func(w io.Writer) { sizeReport(w, in, out) })
}

func runFlow(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("flow", e)
	d := quantityFlag(fs, "D", "pipe internal diameter, m")
	od := quantityFlag(fs, "d", "orifice diameter, m (or -beta)")
	b := quantityFlag(fs, "beta", "diameter ratio d/D (or -d)")
	dp := quantityFlag(fs, "dp", "measured differential pressure, Pa")
	c := commonFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *c.example {
		d.orDefault(0.0266)
		dp.orDefault(24750.74)
		if !b.set {
			od.orDefault(0.0127)
		}
	}
	if err := require(fs, "D", "dp"); err != nil {
		return err
	}
	beta := b.ptr()
	if beta == nil && !od.set {
		return usagef("one of -beta or -d is required (or use -example)")
	}

	in := domain.FlowInput{
		PipeDiameter:    d.v,
		DeltaP:          dp.v,
		Beta:            beta,
		OrificeDiameter: od.ptr(),
		Fluid:           c.fluid(),
		Installation:    c.installation(),
	}
	if err := bind.Struct(in); err != nil {
		return fail(e, *c.asJSON, err)
	}
	svc, err := service(e.cfg)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	out, err := svc.Flow(ctx, in)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	return emit(e, *c.asJSON, out, func(w io.Writer) { flowReport(w, in, out) })
}

func runDeltaP(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("dp", e)
	q := quantityFlag(fs, "q", "volumetric flow, m3/s")
	od := quantityFlag(fs, "d", "orifice diameter, m")
	d := quantityFlag(fs, "D", "pipe internal diameter, m")
	c := commonFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *c.example {
		q.orDefault(0.02)
		od.orDefault(0.0641)
		d.orDefault(0.15)
	}
	if err := require(fs, "q", "d", "D"); err != nil {
		return err
	}

	in := domain.DeltaPInput{
		FlowRate:        q.v,
		OrificeDiameter: od.v,
		PipeDiameter:    d.v,
		Fluid:           c.fluid(),
		Installation:    c.installation(),
	}
	if err := bind.Struct(in); err != nil {
		return fail(e, *c.asJSON, err)
	}
	svc, err := service(e.cfg)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	out, err := svc.DeltaP(ctx, in)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	return emit(e, *c.asJSON, out, func(w io.Writer) { deltaPReport(w, in, out) })
}

func runCorrections(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("corrections", e)
	d := quantityFlag(fs, "D", "pipe internal diameter, m")
	c := commonFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *c.example {
		d.orDefault(0.15)
		c.up.orDefault(1.5)
		c.down.orDefault(0.75)
	}
	if err := require(fs, "D"); err != nil {
		return err
	}

	in := domain.CorrectionsInput{
		PipeDiameter:         d.v,
		DischargeCoefficient: *c.c,
		Installation:         c.installation(),
	}
	if err := bind.Struct(in); err != nil {
		return fail(e, *c.asJSON, err)
	}
	svc, err := service(e.cfg)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	out, err := svc.Corrections(ctx, in)
	if err != nil {
		return fail(e, *c.asJSON, err)
	}
	return emit(e, *c.asJSON, out, func(w io.Writer) { correctionsReport(w, out) })
}

func runTables(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("tables", e)
	asJSON := fs.Bool("json", false, "print the response envelope as JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	svc, err := service(e.cfg)
	if err != nil {
		return fail(e, *asJSON, err)
	}
	out, err := svc.Tables(ctx)
	if err != nil {
		return fail(e, *asJSON, err)
	}
	return emit(e, *asJSON, out, func(w io.Writer) { tablesReport(w, out) })
}

func runVersion(_ context.Context, e env, args []string) error {
	fs := newFlagSet("version", e)
	asJSON := fs.Bool("json", false, "print as JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	bi := version.For("orifice-size")
	if *asJSON {
		return writeJSON(e.stdout, bi)
	}
	_, _ = fmt.Fprintf(e.stdout, "%s %s (commit %s, built %s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date, bi.Go)
	return nil
}
