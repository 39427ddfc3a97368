package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Lift language interpreter and JIT compiler",
	Long: `lift is a statically-typed, expression-oriented scripting language.

Lift is small by design:
  - Every construct is an expression, including if/while/blocks.
  - Static typing with struct, list, map, range and enum values.
  - Methods on primitives, aliases, and structs via a single dispatch rule.
  - Two execution backends that must agree: a tree-walking interpreter
    and a JIT that lowers the annotated AST to native code.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
