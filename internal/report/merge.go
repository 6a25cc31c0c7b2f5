package report

import "sort"

// Merge concatenates per-repository batches in configuration order,
// preserving intra-batch order.
func Merge(batches ...[]Record) []Record {
	var total int
	for _, b := range batches {
		total += len(b)
	}

	merged := make([]Record, 0, total)
	for _, b := range batches {
		merged = append(merged, b...)
	}
	return merged
}

// SortByTime orders records by timestamp, oldest first, or newest
// first when reverse is set. The sort is stable: records sharing a
// timestamp keep their fetch order (repository order, then order
// within the repository), so output is deterministic across runs on
// unchanged data.
func SortByTime(records []Record, reverse bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if reverse {
			return records[i].Timestamp > records[j].Timestamp
		}
		return records[i].Timestamp < records[j].Timestamp
	})
}
