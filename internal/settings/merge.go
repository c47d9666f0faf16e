// Package settings implements the merge rules for team preference documents.
package settings

// Merge combines two nested key-value documents and returns a new map; the
// inputs are never mutated. For each key present on both sides the merge
// recurses when both values are maps, otherwise the overlay value wins
// outright. That includes slices: an overlay slice replaces the base slice
// wholesale, it is never concatenated onto it.
func Merge(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		bm, baseIsMap := out[k].(map[string]any)
		om, overlayIsMap := v.(map[string]any)
		if baseIsMap && overlayIsMap {
			out[k] = Merge(bm, om)
			continue
		}
		out[k] = v
	}
	return out
}
