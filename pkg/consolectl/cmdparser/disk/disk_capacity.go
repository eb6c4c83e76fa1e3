package disk

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	hwameistorapi "github.com/hwameistor/storage-console/pkg/apiserver/api"
	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/capacity"
	"github.com/hwameistor/storage-console/pkg/consolectl/formatter"
	"github.com/hwameistor/storage-console/pkg/consolectl/manager"
	"github.com/hwameistor/storage-console/pkg/consolectl/utils"
	"github.com/hwameistor/storage-console/pkg/disk/filter"
)

var (
	minSize     float64
	maxSize     float64
	sizeUnit    string
	diskType    string
	deviceTypes []string
)

var diskCapacity = &cobra.Command{
	Use:   "capacity",
	Args:  cobra.ExactArgs(0),
	Short: "Show the capacity of the disks matching the filters.",
	Long: "You can use 'consolectl disk capacity' to see how much of the discovered capacity\n" +
		"the selected nodes provide with the given disk filters.",
	Example: "consolectl disk capacity --min 1.5 --unit TiB\n" +
		"consolectl disk capacity --disk-type HDD --device-type Disk,Part --node 'worker-*'",
	RunE: diskCapacityRunE,
}

func init() {
	// Disk capacity flags
	diskCapacity.Flags().Float64Var(&minSize, "min", 0, "Minimum disk size")
	diskCapacity.Flags().Float64Var(&maxSize, "max", 0, "Maximum disk size, 0 for no limit")
	diskCapacity.Flags().StringVar(&sizeUnit, "unit", "GiB", "Unit of the disk sizes, e.g. GiB, TiB")
	diskCapacity.Flags().StringVar(&diskType, "disk-type", string(filter.DiskTypeAll), "Disk type: All, HDD or 'SSD / NVMe'")
	diskCapacity.Flags().StringSliceVar(&deviceTypes, "device-type", nil, "Device types: Disk, Part, Mpath, all when empty")
	diskCapacity.Flags().StringSliceVar(&nodePatterns, "node", nil, "Select nodes by name glob patterns, all nodes when empty")
}

func diskCapacityRunE(cmd *cobra.Command, _ []string) error {
	req, err := capacityRequest()
	if err != nil {
		return err
	}

	source, err := manager.BuildSource(cmd.Context())
	if err != nil {
		return err
	}
	results := source.DiscoveryResults()
	if err := results.Err(); err != nil {
		return err
	}

	req.Nodes, err = utils.MatchNodes(nodePatterns, capacity.ChartNodes(capacity.Aggregate(results.OrEmpty())).List())
	if err != nil {
		return err
	}
	criteria, sizeValid := consolectr.Criteria(req)
	rsp := consolectr.CapacityRspOf(capacity.Compute(results, criteria, sizeValid, setOf(req.Nodes)))

	formatter.PrintParameters("Capacity", []formatter.Parameter{
		{Key: "Total", Value: rsp.Total},
		{Key: "Filtered Disks", Value: rsp.FilteredDisks},
		{Key: "Selected", Value: rsp.Selected},
		{Key: "Chart Disks", Value: rsp.ChartDisks},
		{Key: "Available", Value: rsp.Available},
		{Key: "Chart Nodes", Value: strings.Join(rsp.ChartNodes, ",")},
	})

	var donutRows []table.Row
	for _, slice := range rsp.Donut {
		donutRows = append(donutRows, table.Row{slice.X, slice.Label})
	}
	formatter.PrintTable("", table.Row{"Slice", "Capacity"}, donutRows)
	return nil
}

func capacityRequest() (*hwameistorapi.CapacityReqBody, error) {
	req := &hwameistorapi.CapacityReqBody{
		MinSize:  minSize,
		MaxSize:  maxSize,
		SizeUnit: sizeUnit,
		DiskType: filter.DiskTypeSelection(diskType),
	}
	switch req.DiskType {
	case filter.DiskTypeAll, filter.DiskTypeSSD, filter.DiskTypeHDD:
	default:
		return nil, fmt.Errorf("unknown disk type %q", diskType)
	}
	for _, t := range deviceTypes {
		deviceType := filter.DeviceTypeFilter(t)
		if !containsDeviceType(filter.AllDeviceTypes, deviceType) {
			return nil, fmt.Errorf("unknown device type %q", t)
		}
		req.DeviceTypes = append(req.DeviceTypes, deviceType)
	}
	return req, nil
}

func containsDeviceType(types []filter.DeviceTypeFilter, t filter.DeviceTypeFilter) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func setOf(nodes []string) sets.String {
	return sets.NewString(nodes...)
}
