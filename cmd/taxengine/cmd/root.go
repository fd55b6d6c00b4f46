// Package cmd provides CLI commands for the federal tax engine.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debug bool

	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Deterministic federal individual income tax calculator",
	Long: `taxengine computes a complete US federal individual income tax
return from a YAML input file: capital gain and loss netting with
carryforwards, passive activity loss limitation, Social Security
taxability, self-employment tax, AMT, QBI, the foreign tax credit
limitation, surtaxes, and credits.

Example:
  taxengine calculate --input return.yaml
  taxengine calculate --input return.yaml --format json`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called once from main.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(calculateCmd)
}
