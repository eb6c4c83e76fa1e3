package units

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"k8s.io/apimachinery/pkg/api/resource"
)

// ConvertToBaseValue converts a size such as "1.5 TiB", "500Gi" or "2T" to bytes
func ConvertToBaseValue(size string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(size), " ", "")
	// resource quantities use Ki/Mi/Gi/Ti, the console shows KiB/MiB/GiB/TiB
	if strings.HasSuffix(s, "iB") {
		s = strings.TrimSuffix(s, "B")
	}
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %v", size, err)
	}
	return q.Value(), nil
}

// SizeWithUnit converts a number in the given unit to bytes. A zero size
// converts to zero.
func SizeWithUnit(size float64, unit string) (int64, error) {
	if size == 0 {
		return 0, nil
	}
	if size < 0 {
		return 0, fmt.Errorf("negative size %v", size)
	}
	return ConvertToBaseValue(fmt.Sprintf("%v %s", size, unit))
}

// HumanizeBinaryBytes formats bytes with binary prefixes, e.g. "1.5 TiB"
func HumanizeBinaryBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}
