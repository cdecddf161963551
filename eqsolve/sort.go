package eqsolve

import "sort"

// SortByValue orders terms by Value, then Index, grounded on
// mbin_eq_sort_by_value_32 (there implemented via qsort over a
// TAILQ snapshot; sort.Slice replaces both the snapshot and the
// comparator).
func SortByValue(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Value != terms[j].Value {
			return terms[i].Value < terms[j].Value
		}
		return terms[i].Index < terms[j].Index
	})
}

// SortByIndex orders terms by Index, grounded on mbin_eq_sort_32.
func SortByIndex(terms []Term) {
	sort.Slice(terms, func(i, j int) bool { return terms[i].Index < terms[j].Index })
}
