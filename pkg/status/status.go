package status

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	v1alpha1 "github.com/hwameistor/storage-console/pkg/apis/console/v1alpha1"
	"github.com/hwameistor/storage-console/pkg/result"
)

// HealthState of a dashboard item
type HealthState string

const (
	HealthStateOK          HealthState = "OK"
	HealthStateError       HealthState = "ERROR"
	HealthStateProgressing HealthState = "PROGRESS"
	HealthStateLoading     HealthState = "LOADING"
	HealthStateUnknown     HealthState = "UNKNOWN"
)

// CSV phases of an operator install
const (
	CSVPhaseSucceeded  = "Succeeded"
	CSVPhaseFailed     = "Failed"
	CSVPhaseInstalling = "Installing"
	CSVPhasePending    = "Pending"
	CSVPhaseReplacing  = "Replacing"
)

// SystemHealth is one storage system row of the status popup
type SystemHealth struct {
	SystemName  string      `json:"systemName"`
	HealthState HealthState `json:"healthState"`
	Link        string      `json:"link"`
}

// Card is the dashboard status card
type Card struct {
	Operator         HealthState    `json:"operator"`
	HealthySystems   []SystemHealth `json:"healthySystems"`
	UnhealthySystems []SystemHealth `json:"unhealthySystems"`
}

// PartitionSystems splits the storage systems by phase. Systems that are not
// loaded yet or failed to load produce two empty lists.
func PartitionSystems(systems result.Result[[]v1alpha1.StorageSystem]) (healthy, unhealthy []v1alpha1.StorageSystem) {
	healthy, unhealthy = []v1alpha1.StorageSystem{}, []v1alpha1.StorageSystem{}
	for _, system := range systems.OrEmpty() {
		if system.Status.Phase == v1alpha1.StorageSystemPhaseSucceeded {
			healthy = append(healthy, system)
		} else {
			unhealthy = append(unhealthy, system)
		}
	}
	return healthy, unhealthy
}

// SystemHealthMap builds the popup rows of the systems, all in the given state
func SystemHealthMap(systems []v1alpha1.StorageSystem, state HealthState) []SystemHealth {
	rows := make([]SystemHealth, 0, len(systems))
	for i := range systems {
		rows = append(rows, SystemHealth{
			SystemName:  systems[i].Name,
			HealthState: state,
			Link:        DashboardLink(&systems[i]),
		})
	}
	return rows
}

// DashboardLink returns the overview path of a storage system. The system
// kind "storagecluster.ocs.openshift.io/v1" is referenced as
// "ocs.openshift.io~v1~storagecluster".
func DashboardLink(system *v1alpha1.StorageSystem) string {
	return fmt.Sprintf("/odf/system/%s/%s/overview", kindReference(system.Spec.Kind), system.Spec.Name)
}

func kindReference(kind string) string {
	groupKind, version := kind, ""
	if i := strings.LastIndex(kind, "/"); i >= 0 {
		groupKind, version = kind[:i], kind[i+1:]
	}
	parts := strings.SplitN(groupKind, ".", 2)
	if len(parts) != 2 || version == "" {
		return kind
	}
	return strings.Join([]string{parts[1], version, parts[0]}, "~")
}

// OperatorHealth maps the operator CSV phase to a health state
func OperatorHealth(phase string, loading bool, err error) HealthState {
	switch {
	case loading:
		return HealthStateLoading
	case err != nil:
		return HealthStateError
	}
	switch phase {
	case CSVPhaseSucceeded:
		return HealthStateOK
	case CSVPhaseFailed:
		return HealthStateError
	case CSVPhaseInstalling, CSVPhasePending, CSVPhaseReplacing:
		return HealthStateProgressing
	}
	return HealthStateUnknown
}

// CSVPhase reads the phase of the operator CSV from the list. The first CSV
// named with the prefix is used, or the first CSV when prefix is empty.
func CSVPhase(csvs *unstructured.UnstructuredList, prefix string) (string, error) {
	if csvs == nil {
		return "", nil
	}
	raw, err := csvs.MarshalJSON()
	if err != nil {
		return "", err
	}
	path := "items.0.status.phase"
	if prefix != "" {
		path = fmt.Sprintf(`items.#(metadata.name%%"%s*").status.phase`, prefix)
	}
	return gjson.GetBytes(raw, path).String(), nil
}

// BuildCard assembles the status card
func BuildCard(systems result.Result[[]v1alpha1.StorageSystem], csvs result.Result[*unstructured.UnstructuredList], operatorPrefix string) Card {
	phase, err := "", csvs.Err()
	if list, ok := csvs.Data(); ok {
		phase, err = CSVPhase(list, operatorPrefix)
	}

	healthy, unhealthy := PartitionSystems(systems)
	return Card{
		Operator:         OperatorHealth(phase, csvs.IsPending(), err),
		HealthySystems:   SystemHealthMap(healthy, HealthStateOK),
		UnhealthySystems: SystemHealthMap(unhealthy, HealthStateError),
	}
}
