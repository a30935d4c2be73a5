package cmd

import (
	"os"

	"github.com/criblio/hello/internal"
	"github.com/criblio/hello/server"
	"github.com/criblio/hello/util"
	"github.com/spf13/cobra"
)

// sc holds server flags shared by serve, config, k8s and the root command
var sc serveConfig

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Run the Hello World server",
	Long: `Listens on the configured port and answers every request, whatever its method, path, headers or body, with Hello World.

Configuration is read from $HELLO_HOME/config.yml (or --config), then HELLO_PORT, HELLO_ADDRESS and HELLO_ENGINE, then flags.`,
	Example: `hello serve
hello serve --port 8080 --address 127.0.0.1
hello serve --engine fasthttp --debug`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	c := loadServerConfig(cmd, &sc)

	if sc.LogFile != "" {
		internal.InitConfigFile(sc.LogFile)
	} else {
		internal.InitConfigWriter(os.Stderr)
	}
	if sc.Debug {
		internal.SetDebug()
	}

	srv, err := server.New(c, os.Stdout)
	util.CheckErrSprintf(err, "%v", err)

	err = srv.ListenAndServe()
	util.CheckErrSprintf(err, "%v", err)
}

func init() {
	serverFlags(serveCmd, &sc)
	serveCmd.Flags().BoolVar(&sc.Debug, "debug", false, "Turn on debug logging")
	serveCmd.Flags().StringVar(&sc.LogFile, "logfile", "", "Write logs to a file instead of stderr")
	RootCmd.AddCommand(serveCmd)
}
