package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	GiB int64 = 1024 * 1024 * 1024
	TiB       = 1024 * GiB
)

func TestConvertToBaseValue(t *testing.T) {
	testCases := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"1.5 TiB", TiB + TiB/2, false},
		{"500Gi", 500 * GiB, false},
		{"2 GiB", 2 * GiB, false},
		{"1T", 1000 * 1000 * 1000 * 1000, false},
		{"1024", 1024, false},
		{"lots", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ConvertToBaseValue(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSizeWithUnit(t *testing.T) {
	got, err := SizeWithUnit(1.5, "TiB")
	assert.NoError(t, err)
	assert.Equal(t, TiB+TiB/2, got)

	got, err = SizeWithUnit(0, "TiB")
	assert.NoError(t, err)
	assert.Zero(t, got)

	_, err = SizeWithUnit(-1, "GiB")
	assert.Error(t, err)
}

func TestHumanizeBinaryBytes(t *testing.T) {
	assert.Equal(t, "1.0 TiB", HumanizeBinaryBytes(TiB))
	assert.Equal(t, "3.0 TiB", HumanizeBinaryBytes(3*TiB))
	assert.Equal(t, "0 B", HumanizeBinaryBytes(-5))
}
