package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.creack.net/calc/calculator"
)

// errFailed reports that at least one expression failed. Details were already
// printed.
var errFailed = errors.New("some expressions failed")

type options struct {
	configFile string
	inputFile  string
	maxLength  int
	unaryMinus bool
	exponent   bool
	aliases    bool
	dump       bool
	verbose    bool
	color      bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions such as "7+8*3" with the usual
operator precedence.

Expressions are read from the arguments, from a file (one per line) with
--file, or interactively from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			sh := newShell(calculator.New(cfg), stdout, stderr, opts)

			switch {
			case opts.inputFile != "":
				lines, err := readLines(opts.inputFile, stdin)
				if err != nil {
					return err
				}
				return sh.batch(lines)
			case len(args) > 0:
				return sh.batch(args)
			default:
				return sh.repl(stdin)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	flags.StringVarP(&opts.inputFile, "file", "f", "", "read one expression per line from file, - for stdin")
	flags.IntVar(&opts.maxLength, "max-length", calculator.DefaultMaxInputLength, "maximum expression length in characters")
	flags.BoolVar(&opts.unaryMinus, "unary-minus", false, "accept a prefix minus, e.g. -5")
	flags.BoolVar(&opts.exponent, "exponent", false, "accept exponents in numbers, e.g. 1e3")
	flags.BoolVar(&opts.aliases, "aliases", false, "accept x and ÷ as operators")
	flags.BoolVar(&opts.dump, "dump", false, "print tokens and tree of each expression to stderr")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log error details to stderr")
	flags.BoolVar(&opts.color, "color", !color.NoColor, "color error messages")
	return cmd
}

// loadConfig reads the config file, if any, then applies the flags set on the
// command line.
func loadConfig(cmd *cobra.Command, opts *options) (calculator.Config, error) {
	cfg := calculator.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = calculator.LoadConfig(opts.configFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-length") {
		cfg.MaxInputLength = opts.maxLength
	}
	if flags.Changed("unary-minus") {
		cfg.UnaryMinus = opts.unaryMinus
	}
	if flags.Changed("exponent") {
		cfg.Exponent = opts.exponent
	}
	if flags.Changed("aliases") {
		cfg.OperatorAliases = opts.aliases
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func readLines(name string, stdin io.Reader) ([]string, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", name, err)
		}
		defer func() { _ = f.Close() }() // Best effort, read only.
		r = f
	}

	var lines []string
	if err := eachLine(r, func(line string) { lines = append(lines, line) }); err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return lines, nil
}

// eachLine calls fn for every non-blank line of r, without the line ending.
// Lines have no size limit, the calculator enforces its own.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			fn(line)
		}
		if err != nil {
			return nil
		}
	}
}

type shell struct {
	calc   *calculator.Calculator
	stdout io.Writer
	logger *log.Logger
	dump   bool
	errMsg *color.Color
}

func newShell(calc *calculator.Calculator, stdout, stderr io.Writer, opts *options) *shell {
	logOut := io.Discard
	if opts.verbose || opts.dump {
		logOut = stderr
	}
	errMsg := color.New(color.FgRed)
	if opts.color {
		errMsg.EnableColor()
	} else {
		errMsg.DisableColor()
	}
	return &shell{
		calc:   calc,
		stdout: stdout,
		logger: setupLogger(log.New(logOut, "", 0)),
		dump:   opts.dump,
		errMsg: errMsg,
	}
}

type result struct {
	value float64
	err   error
}

// batch evaluates the expressions concurrently and prints the results in
// input order.
func (sh *shell) batch(exprs []string) error {
	results := make([]result, len(exprs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			v, err := sh.calc.Evaluate(expr)
			results[i] = result{value: v, err: err}
			return nil
		})
	}
	_ = g.Wait() // Failures are per expression, in results.

	failed := false
	for i, expr := range exprs {
		if !sh.print(expr, results[i]) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// repl evaluates one expression per line until EOF.
func (sh *shell) repl(stdin io.Reader) error {
	failed := false
	if err := eachLine(stdin, func(expr string) {
		v, err := sh.calc.Evaluate(expr)
		if !sh.print(expr, result{value: v, err: err}) {
			failed = true
		}
	}); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if failed {
		return errFailed
	}
	return nil
}

// print writes one result and reports whether it was a success.
func (sh *shell) print(expr string, r result) bool {
	if sh.dump {
		sh.dumpExpr(expr)
	}
	if r.err != nil {
		sh.logger.Printf("%q: %s.", expr, r.err)
		_, _ = sh.errMsg.Fprintln(sh.stdout, calculator.UserMessage)
		return false
	}
	_, _ = fmt.Fprintln(sh.stdout, strconv.FormatFloat(r.value, 'g', -1, 64))
	return true
}

// dumpExpr logs the tokens and tree of expr. Over-limit input is not
// tokenized.
func (sh *shell) dumpExpr(expr string) {
	if utf8.RuneCountInString(expr) > sh.calc.Config().MaxInputLength {
		return
	}
	tokens, err := sh.calc.Tokenize(expr)
	if err != nil {
		return
	}
	sh.logger.Print(pretty.Sprintf("tokens: %# v", tokens))
	if tree, err := sh.calc.Parse(expr); err == nil {
		sh.logger.Printf("tree: %s", tree.Dump())
	}
}

// setupLogger sets the format shared by every calc log line.
func setupLogger(l *log.Logger) *log.Logger {
	l.SetFlags(0)
	l.SetPrefix("calc: ")
	return l
}

func main() {
	setupLogger(log.Default())
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Fatalf("Error: %s.", err)
	}
}
