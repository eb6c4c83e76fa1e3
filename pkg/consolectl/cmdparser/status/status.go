package status

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	consolectr "github.com/hwameistor/storage-console/pkg/apiserver/manager/console"
	"github.com/hwameistor/storage-console/pkg/config"
	"github.com/hwameistor/storage-console/pkg/consolectl/formatter"
	"github.com/hwameistor/storage-console/pkg/consolectl/manager"
)

var operatorPrefix string

var Status = &cobra.Command{
	Use:   "status",
	Args:  cobra.ExactArgs(0),
	Short: "Show the health of the storage operator and systems.",
	Long: "You can use 'consolectl status' to see the health of the storage operator\n" +
		"and of every storage system, with their dashboard links.",
	Example: "consolectl status\n" +
		"consolectl status --operator-prefix odf-operator",
	RunE: statusRunE,
}

func init() {
	Status.Flags().StringVar(&operatorPrefix, "operator-prefix", config.DefaultOperatorPrefix, "Name prefix of the operator ClusterServiceVersion")
}

func statusRunE(cmd *cobra.Command, _ []string) error {
	source, err := manager.BuildSource(cmd.Context())
	if err != nil {
		return err
	}
	card := consolectr.NewStatusController(source, operatorPrefix).StatusCard()

	formatter.PrintParameters("Storage Console", []formatter.Parameter{
		{Key: "Operator", Value: card.Operator},
		{Key: "Systems", Value: card.SystemsState.Phase.String()},
	})

	var rows []table.Row
	for _, system := range card.HealthySystems {
		rows = append(rows, table.Row{system.SystemName, system.HealthState, system.Link})
	}
	for _, system := range card.UnhealthySystems {
		rows = append(rows, table.Row{system.SystemName, system.HealthState, system.Link})
	}
	formatter.PrintTable("Storage Systems", table.Row{"Name", "Health", "Dashboard"}, rows)
	return nil
}
