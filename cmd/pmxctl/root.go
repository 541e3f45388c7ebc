package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/edirooss/pmx-registry/internal/config"
	"github.com/edirooss/pmx-registry/pkg/fmtt"
	"github.com/edirooss/pmx-registry/pkg/pmxclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	debug   bool
}

// run executes pmxctl with args and returns the process exit code.
func run(args []string, out, errOut io.Writer) int {
	a := &app{v: viper.New(), out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)

	if _, err := root.ExecuteC(); err != nil {
		a.report(err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pmxctl",
		Short:         "Inspect and edit a running pmx-registry",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", config.Version, config.GitCommit, config.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/pmx/pmxctl.yaml)")
	root.PersistentFlags().String("server", pmxclient.DefaultServer, "registry base URL (env PMX_SERVER)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "print the full error chain on failure")
	_ = a.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))

	addInputCommands(root, a)
	addOutputCommands(root, a)
	addRegistrationCommands(root, a)
	return root
}

func (a *app) report(err error) {
	if a.debug {
		fmtt.PrintErrChainDebug(a.errOut, err)
		return
	}
	fmt.Fprintf(a.errOut, "error: %v\n", err)
	if errors.Is(err, pmxclient.ErrNotFound) {
		fmt.Fprintln(a.errOut, "hint: list the collection to see the ids that exist")
	}
}

// initConfig resolves settings from flags, PMX_* env vars and the config file,
// in that order of precedence.
func (a *app) initConfig() error {
	a.v.SetDefault("server", pmxclient.DefaultServer)
	a.v.SetEnvPrefix("PMX")
	_ = a.v.BindEnv("server")

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		a.v.AddConfigPath(filepath.Join(home, ".config", "pmx"))
		a.v.SetConfigName("pmxctl")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) client() *pmxclient.Client {
	return pmxclient.New(a.v.GetString("server"), nil)
}

func (a *app) print(v any) { fmtt.Dump(a.out, v) }
