package roster

import (
	"cmp"
	"slices"
	"strings"
)

// Counts holds the population of each group.
type Counts struct {
	All     int
	Online  int
	Offline int
}

// Of returns the count for a group.
func (c Counts) Of(g Group) int {
	switch g {
	case GroupOnline:
		return c.Online
	case GroupOffline:
		return c.Offline
	default:
		return c.All
	}
}

// Count tallies entities per group.
func Count(entities []Entity) Counts {
	c := Counts{All: len(entities)}
	for _, e := range entities {
		if e.Online {
			c.Online++
		} else {
			c.Offline++
		}
	}
	return c
}

// Filter returns the entities belonging to group. GroupAll returns the input
// unchanged; the other groups return a new slice.
func Filter(entities []Entity, group Group) []Entity {
	switch group {
	case GroupOnline:
		return keep(entities, func(e Entity) bool { return e.Online })
	case GroupOffline:
		return keep(entities, func(e Entity) bool { return !e.Online })
	default:
		return entities
	}
}

func keep(entities []Entity, pred func(Entity) bool) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given criterion. Entities with equal
// keys keep their input order.
func Sort(entities []Entity, by SortBy) []Entity {
	out := slices.Clone(entities)
	slices.SortStableFunc(out, comparator(by))
	return out
}

func comparator(by SortBy) func(a, b Entity) int {
	switch by {
	case SortRank:
		return compareRank
	case SortName:
		return func(a, b Entity) int {
			return strings.Compare(a.DisplayName, b.DisplayName)
		}
	default:
		// Most recent first.
		return func(a, b Entity) int {
			return b.LastActivity.Compare(a.LastActivity)
		}
	}
}

// compareRank orders ranked entities ascending and places every unranked
// entity after them.
func compareRank(a, b Entity) int {
	switch {
	case a.HasRank() && b.HasRank():
		return cmp.Compare(a.Rank(), b.Rank())
	case a.HasRank():
		return -1
	case b.HasRank():
		return 1
	default:
		return 0
	}
}
