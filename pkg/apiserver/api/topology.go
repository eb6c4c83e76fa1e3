package api

// TopologyReqBody lists the selected nodes. Only the selected nodes owning a
// disk that matches the disk criteria count towards the distribution.
type TopologyReqBody struct {
	CapacityReqBody `json:",inline"`
	// Arbiter evaluates the arbiter layout instead of the stretch rule
	Arbiter bool `json:"arbiter,omitempty"`
}

// ZoneList is every zone of the cluster
type ZoneList struct {
	ResourceState `json:",inline"`

	Zones []string `json:"items"`
}

// TopologyRsp is the zone distribution of the selected nodes
type TopologyRsp struct {
	ResourceState `json:",inline"`

	Distribution     map[string][]string `json:"distribution"`
	NodesPerZone     map[string]int      `json:"nodesPerZone"`
	Zones            []string            `json:"zones"`
	ArbiterZones     []string            `json:"arbiterZones"`
	IsStretchCluster bool                `json:"isStretchCluster"`
	Replicas         int                 `json:"replicas"`
}
