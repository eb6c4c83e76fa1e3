package api

import (
	"github.com/hwameistor/storage-console/pkg/result"
)

// RspFailBody is returned for every failed request
type RspFailBody struct {
	ErrCode int    `json:"errcode"`
	Desc    string `json:"description"`
}

// Pagination of a list response
type Pagination struct {
	// Total number of items
	Total uint32 `json:"total,omitempty"`
	// Page index, starting from 1
	Page int32 `json:"page,omitempty"`
	// Pages is the number of pages
	Pages int32 `json:"pages,omitempty"`
	// PageSize, -1 returns every item
	PageSize int32 `json:"pageSize,omitempty"`
}

// ResourceState tells whether the cluster data behind a response was loaded
type ResourceState struct {
	Phase result.Phase `json:"phase" swaggertype:"string" enums:"Pending,Ready,Failed"`
	Error string       `json:"error,omitempty"`
}

// ResourceStateOf returns the state of the result
func ResourceStateOf[T any](r result.Result[T]) ResourceState {
	state := ResourceState{Phase: r.Phase()}
	if err := r.Err(); err != nil {
		state.Error = err.Error()
	}
	return state
}

// Worst returns the first state that is not ready, failures first
func Worst(states ...ResourceState) ResourceState {
	worst := ResourceState{Phase: result.PhaseReady}
	for _, s := range states {
		switch {
		case s.Phase == result.PhaseFailed:
			return s
		case s.Phase == result.PhasePending:
			worst = s
		}
	}
	return worst
}
