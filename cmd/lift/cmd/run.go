package cmd

import (
	"fmt"
	"os"

	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/interp"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/parser"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	compile  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lift program",
	Long: `Analyze and execute a Lift program from a file or inline expression.

Examples:
  # Run a script file
  lift run script.lt

  # Evaluate inline code
  lift run -e "output(1 + 2);"

  # Print the annotated AST, then run the program
  lift run --dump-ast script.lt

  # Analyze and JIT-compile instead of interpreting (not yet implemented)
  lift run --compile script.lt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the annotated AST before running it")
	runCmd.Flags().BoolVar(&compile, "compile", false, "JIT-compile instead of interpreting; with no JIT backend registered this reports an error")
}

func runScript(_ *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case evalExpr != "":
		source = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		printErrors(liftErrors.FromStringErrors(liftErrors.KindParse, errs, source, filename))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	analyzer := semantic.New(source, filename)
	program, analysisErrs := analyzer.Analyze(program)
	if len(analysisErrs) > 0 {
		printErrors(analysisErrs)
		return fmt.Errorf("analysis failed with %d error(s)", len(analysisErrs))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	if compile {
		return fmt.Errorf("--compile: no JIT backend is registered yet (see internal/jit)")
	}

	out := runtime.NewOutput(os.Stdout)
	interpreter := interp.New(analyzer.Table, out, source, filename)
	_, runErrs := interpreter.Run(program)
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if len(runErrs) > 0 {
		printErrors(runErrs)
		return fmt.Errorf("execution failed with %d error(s)", len(runErrs))
	}

	return nil
}

func printErrors(errs []*liftErrors.LiftError) {
	fmt.Fprint(os.Stderr, liftErrors.FormatErrors(errs, true))
	fmt.Fprintln(os.Stderr)
}
