// Package cli implements the oneofgen command-line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/oneof/internal/gen"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

var errWrite = errors.New("write output")

// NewRootCmd creates the "oneofgen" command with its flags bound to a fresh
// viper instance.
func NewRootCmd() *cobra.Command {
	v := newConfig()

	root := &cobra.Command{
		Use:   "oneofgen",
		Short: "Generate closed union types",
		Long: "oneofgen writes the OfN closed union types with their narrowing\n" +
			"methods, one remainder type per position.",
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by RunE.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFrom(v)
			if err != nil {
				return err
			}
			return generate(cmd, opts)
		},
	}

	f := root.Flags()
	f.String(keyPackage, gen.DefaultPackage, "package name of the generated file")
	f.String(keyTypesetImport, gen.DefaultTypesetImport, "import path of the typeset package")
	f.Int(keyMaxArity, gen.DefaultMaxArity, "largest union arity to generate")
	f.StringP(keyOut, "o", defaultOut, "output file, - for stdout")
	f.BoolP(keyVerbose, "v", stderrIsTerminal(), "report progress on stderr")
	root.PersistentFlags().String(keyConfig, "", "config file (default: none)")

	if err := bindFlags(v, root); err != nil {
		panic(err)
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newResolveCmd())
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oneofgen:", err)
		if errors.Is(err, errWrite) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}

func generate(cmd *cobra.Command, opts options) error {
	var buf bytes.Buffer
	if err := gen.Generate(&buf, opts.Config); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if opts.Out == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", errWrite, opts.Out, err)
	}
	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "oneofgen: wrote Of2..Of%d to %s\n", opts.MaxArity, opts.Out)
	}
	return nil
}
