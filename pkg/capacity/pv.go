package capacity

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

// SCAvailablePVs returns the available PVs of the storage class
func SCAvailablePVs(pvs []corev1.PersistentVolume, storageClass string) []corev1.PersistentVolume {
	available := []corev1.PersistentVolume{}
	for _, pv := range pvs {
		if pv.Spec.StorageClassName == storageClass && pv.Status.Phase == corev1.VolumeAvailable {
			available = append(available, pv)
		}
	}
	return available
}

// PVsCapacity sums the storage capacity of the PVs
func PVsCapacity(pvs []corev1.PersistentVolume) int64 {
	var total int64
	for _, pv := range pvs {
		if storage, exists := pv.Spec.Capacity[corev1.ResourceStorage]; exists {
			total += storage.Value()
		}
	}
	return total
}

// AssociatedNodes returns the hostnames the PVs are pinned to through their
// required node affinity, in first seen order
func AssociatedNodes(pvs []corev1.PersistentVolume) []string {
	seen := sets.NewString()
	nodes := []string{}
	for _, pv := range pvs {
		if pv.Spec.NodeAffinity == nil || pv.Spec.NodeAffinity.Required == nil {
			continue
		}
		for _, term := range pv.Spec.NodeAffinity.Required.NodeSelectorTerms {
			for _, expr := range term.MatchExpressions {
				if expr.Key != corev1.LabelHostname {
					continue
				}
				for _, value := range expr.Values {
					if !seen.Has(value) {
						seen.Insert(value)
						nodes = append(nodes, value)
					}
				}
			}
		}
	}
	return nodes
}
