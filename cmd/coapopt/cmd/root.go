// Package cmd provides the CLI commands for the coapopt inspector.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plgd-dev/coap-message/internal/logging"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "coapopt",
	Short: "Inspect and build CoAP option blocks",
	Long: `A utility for working with the option block of CoAP messages:
decode a hex dump into a readable option listing, or build an option
block from named options.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		human, _ := cmd.Flags().GetBool("human")
		logging.InitLogger(debug, human)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("human", true, "log in console format instead of JSON")
}
