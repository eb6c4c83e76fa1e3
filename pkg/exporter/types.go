package exporter

const namespace = "storage_console"

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
