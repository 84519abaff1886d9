package timeseries

import "slices"

// ResolveLatest keeps exactly one record per key: the one with the greatest
// (timestamp, sequence) pair. Records sharing a timestamp are decided by the higher
// ingestion sequence, so the winner does not depend on input order.
// The result is ordered by key.
func ResolveLatest[R Series](records []R) []R {
	best := make(map[string]R, len(records))
	for _, r := range records {
		current, ok := best[r.SeriesKey()]
		if !ok || newer(r, current) {
			best[r.SeriesKey()] = r
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]R, 0, len(keys))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out
}
