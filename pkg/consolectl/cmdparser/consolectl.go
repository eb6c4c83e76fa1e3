package cmdparser

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hwameistor/storage-console/pkg/config"
	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser/definitions"
	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser/disk"
	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser/status"
	"github.com/hwameistor/storage-console/pkg/consolectl/cmdparser/topology"
)

var Consolectl = &cobra.Command{
	Use:   "consolectl",
	Args:  cobra.ExactArgs(0),
	Short: "Consolectl is the command-line tool for the storage console.",
	Long: "Consolectl shows the discovered disks, the capacity a storage system would get,\n" +
		"the zone topology of the nodes and the health of the storage systems.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logs are shown in debug mode only
		if !definitions.Debug {
			log.SetOutput(io.Discard)
		} else {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
	SilenceUsage: true,
}

func init() {
	// Consolectl flags
	Consolectl.PersistentFlags().BoolVar(&definitions.Debug, "debug", false, "Enable debug mode")
	Consolectl.PersistentFlags().StringVar(&definitions.KubeConfigPath, "kubeconfig", definitions.DefaultKubeConfigPath, "Specify the kubeconfig file")
	Consolectl.PersistentFlags().StringVarP(&definitions.Namespace, "namespace", "n", config.DefaultNamespace, "The namespace of the storage systems and operators")
	Consolectl.PersistentFlags().DurationVar(&definitions.Timeout, "timeout", 10*time.Second, "Set the request timeout")

	// Sub commands
	Consolectl.AddCommand(disk.Disk, topology.Topology, status.Status)
}
