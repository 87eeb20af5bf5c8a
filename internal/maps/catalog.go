package maps

import "sort"

// Merge combines catalogs into one list sorted by ID. When several
// catalogs define the same ID, the entry from the later catalog wins.
func Merge(catalogs ...[]Entry) []Entry {
	byID := make(map[string]Entry)
	for _, catalog := range catalogs {
		for _, e := range catalog {
			byID[e.ID] = e
		}
	}

	merged := make([]Entry, 0, len(byID))
	for _, e := range byID {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// Find returns the entry with the given ID.
func Find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
