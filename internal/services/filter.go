package services

import "eventboard/internal/domain"

// FilterEvents returns the subsequence of list whose events match both the
// free-text query and the category selector, preserving relative order.
// It is a pure function of its inputs: no re-sorting, no mutation. Filtering
// an already-filtered list with the same criteria yields the same list.
func FilterEvents(list []domain.EventWithDays, query, category string) []domain.EventWithDays {
	out := make([]domain.EventWithDays, 0, len(list))
	for _, item := range list {
		if item.MatchesSearch(query) && item.MatchesCategory(category) {
			out = append(out, item)
		}
	}
	return out
}
