package rewrite

import "sort"

// edit is a single byte-span replacement against the original source.
// Pure insertions have start == end. The tree-sitter CST is immutable, so
// the rewrite pass collects edits during one traversal and splices them
// back-to-front; that application is the serialization step.
type edit struct {
	start uint32
	end   uint32
	text  string
}

// applyEdits splices the collected edits into source. Edits are applied from
// the end of the file backwards so earlier offsets stay valid. Overlapping
// edits should not be produced by the rule set; if one slips through, the
// later-starting edit wins and the overlapped one is dropped.
func applyEdits(source []byte, edits []edit) []byte {
	if len(edits) == 0 {
		return source
	}

	sorted := make([]edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start > sorted[j].start
		}
		return sorted[i].end > sorted[j].end
	})

	out := make([]byte, len(source))
	copy(out, source)

	lastStart := uint32(len(source))
	for _, e := range sorted {
		if e.start > e.end || e.end > uint32(len(source)) {
			continue
		}
		if e.end > lastStart {
			continue // overlaps an already applied edit
		}
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
		lastStart = e.start
	}

	return out
}
