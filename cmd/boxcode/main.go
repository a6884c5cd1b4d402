// Command boxcode validates and builds egg-box codes from the command line,
// using the same rules as the HTTP service.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	plantTZ  string
	logLevel string
)

// cliStation is the station name recorded for codes checked from the CLI
const cliStation = "cli"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "boxcode",
		Short:         "Validate and build 16-digit egg-box codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&plantTZ, "tz", "America/Santiago", "plant timezone used for dates and shifts")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	root.AddCommand(newValidateCmd(), newEncodeCmd(), newReferenceCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
