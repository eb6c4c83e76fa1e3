package result

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultPhases(t *testing.T) {
	var zero Result[[]string]
	assert.True(t, zero.IsPending())
	assert.Nil(t, zero.OrEmpty())

	ready := Ready([]string{"n1"})
	data, ok := ready.Data()
	assert.True(t, ok)
	assert.Equal(t, []string{"n1"}, data)
	assert.NoError(t, ready.Err())

	failed := Failed[[]string](errors.New("boom"))
	assert.True(t, failed.IsFailed())
	assert.False(t, failed.IsReady())
	assert.EqualError(t, failed.Err(), "boom")
	assert.Nil(t, failed.OrEmpty())

	assert.Error(t, Failed[int](nil).Err())
}

func TestMap(t *testing.T) {
	length := func(s []string) int { return len(s) }

	assert.Equal(t, 2, Map(Ready([]string{"a", "b"}), length).OrEmpty())
	assert.True(t, Map(Pending[[]string](), length).IsPending())

	mapped := Map(Failed[[]string](errors.New("boom")), length)
	assert.True(t, mapped.IsFailed())
	assert.EqualError(t, mapped.Err(), "boom")
}

func TestPhaseMarshalText(t *testing.T) {
	data, err := json.Marshal(struct {
		Phase Phase `json:"phase"`
	}{PhaseFailed})
	assert.NoError(t, err)
	assert.Equal(t, `{"phase":"Failed"}`, string(data))

	var decoded struct {
		Phase Phase `json:"phase"`
	}
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, PhaseFailed, decoded.Phase)
	assert.Error(t, json.Unmarshal([]byte(`{"phase":"Unknown"}`), &decoded))
}
