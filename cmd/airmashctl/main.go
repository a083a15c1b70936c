// Command airmashctl decodes airmash packets and capture files, and runs a
// small inspector server that logs client traffic.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	cfgFile  string
	envFile  string
	logLevel string

	cfg Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "airmashctl",
		Short:         "Inspect the airmash binary protocol",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.cfgFile, cmd.Flags().Changed("config"), a.envFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
				if err := cfg.validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "airmash.toml", "config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "file of AIRMASH_* variables")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")

	root.AddCommand(
		newDecodeCmd(a),
		newDumpCmd(a),
		newServeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
