package cmd

import (
	"os"

	"github.com/criblio/hello/internal"
	"github.com/criblio/hello/k8s"
	"github.com/criblio/hello/util"
	"github.com/spf13/cobra"
)

var opt k8s.Options

var kc serveConfig

// k8sCmd represents the k8s command
var k8sCmd = &cobra.Command{
	Use:   "k8s",
	Short: "Print kubernetes manifests for the server",
	Long:  `Prints a Deployment and a Service running hello serve, to pass to kubectl. Port and engine come from the same config file, environment and flags as serve.`,
	Example: `  hello k8s | kubectl apply -f -
  hello k8s --namespace web --port 8080 --serviceport 80 --replicas 3 | kubectl apply -f -
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := loadServerConfig(cmd, &kc)
		if opt.Version == "" {
			opt.Version = internal.GetNormalizedVersion()
		}
		opt.Port = c.Port
		opt.Engine = c.Engine
		if opt.Replicas < 1 {
			util.ErrAndExit("replicas must be at least 1, saw: %d", opt.Replicas)
		}
		err := opt.PrintConfig(os.Stdout)
		util.CheckErrSprintf(err, "%v", err)
	},
}

func init() {
	serverFlags(k8sCmd, &kc)
	k8sCmd.Flags().StringVar(&opt.App, "app", "hello", "Name of the app in Kubernetes")
	k8sCmd.Flags().StringVar(&opt.Namespace, "namespace", "default", "Name of the namespace in which to install")
	k8sCmd.Flags().StringVar(&opt.Image, "image", "criblio/hello", "Container image, without tag")
	k8sCmd.Flags().StringVar(&opt.Version, "version", "", "Image tag to deploy (default the running version)")
	k8sCmd.Flags().IntVar(&opt.ServicePort, "serviceport", 0, "Port exposed by the Service (default the server port)")
	k8sCmd.Flags().IntVar(&opt.Replicas, "replicas", 1, "Number of replicas")
	RootCmd.AddCommand(k8sCmd)
}
