package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StorageSystemPhase is the lifecycle phase of a storage system
type StorageSystemPhase string

const (
	StorageSystemPhaseSucceeded   StorageSystemPhase = "Succeeded"
	StorageSystemPhaseProgressing StorageSystemPhase = "Progressing"
	StorageSystemPhaseFailed      StorageSystemPhase = "Failed"
)

// StorageSystemSpec defines the backing system a StorageSystem represents
type StorageSystemSpec struct {
	// Kind is the kind reference of the backing system, e.g. storagecluster.ocs.openshift.io/v1
	Kind string `json:"kind"`

	// Name of the backing system object
	Name string `json:"name"`

	// Namespace of the backing system object
	Namespace string `json:"namespace"`
}

// StorageSystemStatus defines the observed state of StorageSystem
type StorageSystemStatus struct {
	// Phase of the storage system, Succeeded means healthy
	Phase StorageSystemPhase `json:"phase,omitempty"`
}

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// StorageSystem is the Schema for the storagesystems API
// +kubebuilder:subresource:status
// +kubebuilder:resource:path=storagesystems,scope=Namespaced,shortName=storsys
// +kubebuilder:printcolumn:JSONPath=".spec.kind",name=Kind,type=string
// +kubebuilder:printcolumn:JSONPath=".status.phase",name=Phase,type=string
type StorageSystem struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   StorageSystemSpec   `json:"spec,omitempty"`
	Status StorageSystemStatus `json:"status,omitempty"`
}

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// StorageSystemList contains a list of StorageSystem
type StorageSystemList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StorageSystem `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StorageSystem{}, &StorageSystemList{})
}
