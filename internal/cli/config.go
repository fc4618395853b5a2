package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/oneof/internal/gen"
)

const (
	envPrefix  = "ONEOFGEN"
	defaultOut = "union_gen.go"

	keyPackage       = "package"
	keyTypesetImport = "typeset-import"
	keyMaxArity      = "max-arity"
	keyOut           = "out"
	keyVerbose       = "verbose"
	keyConfig        = "config"
)

type options struct {
	gen.Config
	Out     string
	Verbose bool
}

// newConfig returns a viper instance reading ONEOFGEN_* variables, where
// dashes in keys become underscores (ONEOFGEN_MAX_ARITY).
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return fmt.Errorf("bind persistent flags: %w", err)
	}
	return nil
}

// readConfig loads the file named by --config, if any. Flags and
// environment variables still take precedence over it.
func readConfig(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func optionsFrom(v *viper.Viper) (options, error) {
	opts := options{
		Config: gen.Config{
			Package:       v.GetString(keyPackage),
			TypesetImport: v.GetString(keyTypesetImport),
			MaxArity:      v.GetInt(keyMaxArity),
		},
		Out:     v.GetString(keyOut),
		Verbose: v.GetBool(keyVerbose),
	}
	opts.FileName = opts.Out
	if err := opts.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
