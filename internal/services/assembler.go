package services

import "eventboard/internal/domain"

// AssembleEvents joins each event with at most one day1 and one day2 record
// sharing its identifier. Output order and length equal the input event order;
// a missing day record leaves the slot nil. Inputs are not mutated.
//
// Day records are indexed by event ID up front so the join is a single pass.
// If the store ever returns more than one record for a slot, the first one in
// input order wins; the store schema is expected to prevent that with a
// uniqueness constraint.
func AssembleEvents(events []domain.Event, day1, day2 []domain.DayRecord) []domain.EventWithDays {
	day1ByEvent := indexByEvent(day1)
	day2ByEvent := indexByEvent(day2)

	out := make([]domain.EventWithDays, 0, len(events))
	for _, e := range events {
		out = append(out, domain.EventWithDays{
			Event: e,
			Day1:  day1ByEvent[e.ID],
			Day2:  day2ByEvent[e.ID],
		})
	}
	return out
}

func indexByEvent(days []domain.DayRecord) map[int64]*domain.DayRecord {
	byEvent := make(map[int64]*domain.DayRecord, len(days))
	for i := range days {
		d := days[i]
		if _, ok := byEvent[d.EventID]; ok {
			continue
		}
		byEvent[d.EventID] = &d
	}
	return byEvent
}
