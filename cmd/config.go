package cmd

import (
	"github.com/criblio/hello/util"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:     "config [flags]",
	Short:   "Display the effective server configuration",
	Long:    `Prints the configuration serve would run with, after merging the config file, environment and flags.`,
	Example: `hello config
HELLO_PORT=8080 hello config --engine fasthttp`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := loadServerConfig(cmd, &cc)
		address := c.Address
		if address == "" {
			address = "(all interfaces)"
		}
		fields := []util.ObjField{
			{Name: "Port", Field: "port"},
			{Name: "Address", Field: "address", Transform: func(interface{}) string { return address }},
			{Name: "Engine", Field: "engine"},
		}
		err := util.PrintObj(fields, c)
		util.CheckErrSprintf(err, "%v", err)
	},
}

var cc serveConfig

func init() {
	serverFlags(configCmd, &cc)
	RootCmd.AddCommand(configCmd)
}
