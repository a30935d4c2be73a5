package cmd

import (
	"github.com/criblio/hello/server"
	"github.com/criblio/hello/util"
	"github.com/spf13/cobra"
)

type serveConfig struct {
	ConfigPath string
	Port       int
	Address    string
	Engine     string
	Debug      bool
	LogFile    string
}

func serverFlags(cmd *cobra.Command, c *serveConfig) {
	cmd.Flags().StringVar(&c.ConfigPath, "config", "", "Path to a config file (default $HELLO_HOME/config.yml)")
	cmd.Flags().IntVarP(&c.Port, "port", "p", server.DefaultPort, "Port to listen on")
	cmd.Flags().StringVarP(&c.Address, "address", "a", "", "Address to listen on (default all interfaces)")
	cmd.Flags().StringVarP(&c.Engine, "engine", "e", server.EngineNetHTTP, "HTTP engine (nethttp|fasthttp)")
}

// loadServerConfig merges the config file and environment with any flags
// explicitly set on cmd. Errors exit.
func loadServerConfig(cmd *cobra.Command, c *serveConfig) server.Config {
	path := c.ConfigPath
	if path == "" && util.CheckFileExists(util.GetConfigPath()) {
		path = util.GetConfigPath()
	}
	conf, err := server.LoadConfig(path, path != "")
	util.CheckErrSprintf(err, "%v", err)

	if cmd.Flags().Changed("port") {
		conf.Port = c.Port
	}
	if cmd.Flags().Changed("address") {
		conf.Address = c.Address
	}
	if cmd.Flags().Changed("engine") {
		conf.Engine = c.Engine
	}
	return conf
}
