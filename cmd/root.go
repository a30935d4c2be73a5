package cmd

import (
	"strings"

	"github.com/criblio/hello/util"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hello",
	Short: "A server that answers every HTTP request with Hello World\n\nRunning `hello` with no subcommands will execute the `hello serve` command.",
	Example: `  hello
  hello serve --port 8080
  hello serve --engine fasthttp
  hello config
  hello k8s --image criblio/hello | kubectl apply -f -`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	RootCmd.SilenceErrors = true
	if err := RootCmd.Execute(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			util.ErrAndExit("Error: %v\nRun 'hello --help' for usage.", err)
		}
		util.ErrAndExit("%v", err)
	}
}

func init() {
	serverFlags(RootCmd, &sc)
}
