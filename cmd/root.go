package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stellar/go-stellar-sdk/support/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "static-responder",
	Short:         "Serves one static HTML page for every request",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalf("Error executing root command: %s", err.Error())
	}
}

// serveByDefault runs the serve command from its parent. Flags keep their defaults, env vars still apply.
func serveByDefault(serve *cobra.Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		serve.SetContext(cmd.Context())
		serve.SetOut(cmd.OutOrStdout())
		if err := serve.PersistentPreRunE(serve, args); err != nil {
			return err
		}
		return serve.RunE(serve, args)
	}
}

func init() {
	log.DefaultLogger = log.New()

	serve := (&serveCmd{}).Command()
	rootCmd.AddCommand(serve)
	rootCmd.RunE = serveByDefault(serve)
}
