package disk

import (
	"github.com/spf13/cobra"
)

var Disk = &cobra.Command{
	Use:   "disk",
	Args:  cobra.ExactArgs(0),
	Short: "Inspect the discovered disks.",
	Long:  "Inspect the discovered disks and the capacity they provide.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Root cmd will show help only
		return cmd.Help()
	},
}

// nodePatterns are glob patterns selecting nodes by name
var nodePatterns []string

func init() {
	// Disk sub commands
	Disk.AddCommand(diskList, diskCapacity)
}
