package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Selected: 2 * tib, Available: tib}, Summarize(3*tib, 2*tib))
	assert.Equal(t, Summary{Selected: 4 * tib, Available: 0}, Summarize(3*tib, 4*tib))
	assert.Equal(t, Summary{}, Summarize(0, 0))
}

func TestDonut(t *testing.T) {
	slices := Donut(Summary{Selected: 2 * tib, Available: tib})
	assert.Equal(t, []Slice{
		{X: SliceSelected, Y: 2 * tib, Label: "2.0 TiB"},
		{X: SliceAvailable, Y: tib, Label: "1.0 TiB"},
	}, slices)
}

func fakePV(name, sc string, phase corev1.PersistentVolumePhase, size string, hosts ...string) corev1.PersistentVolume {
	pv := corev1.PersistentVolume{
		ObjectMeta: metav1.ObjectMeta{Name: name},
		Spec: corev1.PersistentVolumeSpec{
			StorageClassName: sc,
			Capacity:         corev1.ResourceList{corev1.ResourceStorage: resource.MustParse(size)},
		},
		Status: corev1.PersistentVolumeStatus{Phase: phase},
	}
	if len(hosts) > 0 {
		pv.Spec.NodeAffinity = &corev1.VolumeNodeAffinity{
			Required: &corev1.NodeSelector{
				NodeSelectorTerms: []corev1.NodeSelectorTerm{{
					MatchExpressions: []corev1.NodeSelectorRequirement{{
						Key:      corev1.LabelHostname,
						Operator: corev1.NodeSelectorOpIn,
						Values:   hosts,
					}},
				}},
			},
		}
	}
	return pv
}

func TestPVCapacity(t *testing.T) {
	pvs := []corev1.PersistentVolume{
		fakePV("pv1", "localblock", corev1.VolumeAvailable, "1Ti", "n2"),
		fakePV("pv2", "localblock", corev1.VolumeBound, "1Ti", "n9"),
		fakePV("pv3", "other", corev1.VolumeAvailable, "1Ti", "n8"),
		fakePV("pv4", "localblock", corev1.VolumeAvailable, "512Gi", "n1", "n2"),
		fakePV("pv5", "localblock", corev1.VolumeAvailable, "512Gi"),
	}

	available := SCAvailablePVs(pvs, "localblock")
	assert.Len(t, available, 3)
	assert.Equal(t, 2*tib, PVsCapacity(available))
	assert.Equal(t, []string{"n2", "n1"}, AssociatedNodes(available))
	assert.Empty(t, SCAvailablePVs(nil, "localblock"))
}
