// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heal

import (
	"math"
	"sort"
	"strings"
)

// NormalizeString replaces a blank/whitespace-only string with def,
// recording an INFO issue when a substitution happened.
func NormalizeString(value, def, code, location string, list *List) string {
	if strings.TrimSpace(value) == "" {
		list.Add(Issue{Code: code, Severity: Info, Location: location,
			Message: "blank attribute replaced with default '" + def + "'", WasFixed: true})
		return def
	}
	return value
}

// NormalizeFloat replaces a non-finite value with def, recording a
// WARNING issue when a substitution happened.
func NormalizeFloat(value, def float64, code, location string, list *List) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		list.Add(Issue{Code: code, Severity: Warning, Location: location,
			Message: "non-finite numeric attribute replaced with default", WasFixed: true})
		return def
	}
	return value
}

// NormalizePositive replaces a non-finite or sub-tolerance positive
// attribute (e.g. a segment length) with 0, recording a WARNING.
func NormalizePositive(value, tol float64, code, location string, list *List) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < tol {
		list.Add(Issue{Code: code, Severity: Warning, Location: location,
			Message: "non-finite or sub-tolerance positive attribute replaced with 0", WasFixed: true})
		return 0
	}
	return value
}

// SortAndDedupe stably sorts items by the given key and removes later
// entries whose key equals an already-kept entry's key, per C9's
// "non-strictly-sorted list ... duplicates with equal key removed
// retaining the first" rule. It operates on a copy; items is unchanged.
func SortAndDedupe[T any](items []T, key func(T) float64, code, location string, list *List) []T {
	if len(items) == 0 {
		return items
	}
	out := append([]T{}, items...)
	wasSorted := sort.SliceIsSorted(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	if !wasSorted {
		sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
		list.Add(Issue{Code: code, Severity: Info, Location: location,
			Message: "list was not strictly sorted by key; stably re-sorted", WasFixed: true})
	}
	deduped := out[:0:0]
	var lastKey float64
	haveLast := false
	removed := 0
	for _, it := range out {
		k := key(it)
		if haveLast && k == lastKey {
			removed++
			continue
		}
		deduped = append(deduped, it)
		lastKey = k
		haveLast = true
	}
	if removed > 0 {
		list.Add(Issue{Code: code + ".dup", Severity: Info, Location: location,
			Message: "removed duplicate-key entries, retaining the first occurrence", WasFixed: true})
	}
	return deduped
}
