package roster

import (
	"errors"
	"testing"
	"time"
)

func rank(n int) *int { return &n }

func names(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.DisplayName
	}
	return out
}

func equalNames(got []Entity, want ...string) bool {
	n := names(got)
	if len(n) != len(want) {
		return false
	}
	for i := range n {
		if n[i] != want[i] {
			return false
		}
	}
	return true
}

func sample() []Entity {
	return []Entity{
		{ID: 1, DisplayName: "A", Online: true, GlobalRank: rank(5)},
		{ID: 2, DisplayName: "B", Online: false},
		{ID: 3, DisplayName: "C", Online: true, GlobalRank: rank(2)},
	}
}

func TestFilter_CountsMatchPredicate(t *testing.T) {
	entities := []Entity{
		{ID: 1, DisplayName: "a", Online: true},
		{ID: 2, DisplayName: "b"},
		{ID: 3, DisplayName: "c", Online: true},
		{ID: 4, DisplayName: "d"},
		{ID: 5, DisplayName: "e"},
	}
	cases := []struct {
		group Group
		want  int
	}{
		{GroupAll, 5},
		{GroupOnline, 2},
		{GroupOffline, 3},
	}
	for _, tc := range cases {
		t.Run(tc.group.String(), func(t *testing.T) {
			got := Filter(entities, tc.group)
			if len(got) != tc.want {
				t.Fatalf("Filter(%s) returned %d entities, want %d", tc.group, len(got), tc.want)
			}
			for _, e := range got {
				if tc.group == GroupOnline && !e.Online {
					t.Fatalf("Filter(Online) kept offline entity %q", e.DisplayName)
				}
				if tc.group == GroupOffline && e.Online {
					t.Fatalf("Filter(Offline) kept online entity %q", e.DisplayName)
				}
			}
			if c := Count(entities).Of(tc.group); c != tc.want {
				t.Fatalf("Count().Of(%s) = %d, want %d", tc.group, c, tc.want)
			}
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	if got := Filter(nil, GroupOnline); len(got) != 0 {
		t.Fatalf("Filter(nil) = %v, want empty", got)
	}
}

func TestSort_OnlineByRankScenario(t *testing.T) {
	got := Sort(Filter(sample(), GroupOnline), SortRank)
	if !equalNames(got, "C", "A") {
		t.Fatalf("online by rank = %v, want [C A]", names(got))
	}
}

func TestSort_AllByNameScenario(t *testing.T) {
	in := []Entity{sample()[2], sample()[0], sample()[1]}
	got := Sort(Filter(in, GroupAll), SortName)
	if !equalNames(got, "A", "B", "C") {
		t.Fatalf("all by name = %v, want [A B C]", names(got))
	}
}

func TestSort_RankPutsUnrankedLastAndIsStable(t *testing.T) {
	in := []Entity{
		{ID: 1, DisplayName: "none-1"},
		{ID: 2, DisplayName: "r10", GlobalRank: rank(10)},
		{ID: 3, DisplayName: "none-2"},
		{ID: 4, DisplayName: "r1", GlobalRank: rank(1)},
		{ID: 5, DisplayName: "r10-b", GlobalRank: rank(10)},
		{ID: 6, DisplayName: "zero", GlobalRank: rank(0)},
	}
	got := Sort(in, SortRank)
	if !equalNames(got, "zero", "r1", "r10", "r10-b", "none-1", "none-2") {
		t.Fatalf("rank order = %v", names(got))
	}
}

func TestSort_RecentActivityDescendingAndStable(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []Entity{
		{ID: 1, DisplayName: "old", LastActivity: base.Add(-time.Hour)},
		{ID: 2, DisplayName: "new", LastActivity: base},
		{ID: 3, DisplayName: "never"},
		{ID: 4, DisplayName: "new-too", LastActivity: base},
	}
	got := Sort(in, SortRecentActivity)
	if !equalNames(got, "new", "new-too", "old", "never") {
		t.Fatalf("recent order = %v", names(got))
	}
}

func TestSort_NameIsCaseSensitive(t *testing.T) {
	in := []Entity{
		{ID: 1, DisplayName: "alice"},
		{ID: 2, DisplayName: "Bob"},
		{ID: 3, DisplayName: "Alice"},
	}
	got := Sort(in, SortName)
	if !equalNames(got, "Alice", "Bob", "alice") {
		t.Fatalf("name order = %v, want [Alice Bob alice]", names(got))
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := sample()
	_ = Sort(in, SortName)
	_ = Sort(in, SortRank)
	if !equalNames(in, "A", "B", "C") {
		t.Fatalf("input reordered to %v", names(in))
	}
}

func TestParseCriteria(t *testing.T) {
	if g, err := ParseGroup(" online "); err != nil || g != GroupOnline {
		t.Fatalf("ParseGroup(online) = %v, %v", g, err)
	}
	if s, err := ParseSortBy(""); err != nil || s != SortRecentActivity {
		t.Fatalf("ParseSortBy(blank) = %v, %v", s, err)
	}
	if st, err := ParseStyle("BRICK"); err != nil || st != StyleBrick {
		t.Fatalf("ParseStyle(BRICK) = %v, %v", st, err)
	}
	if _, err := ParseStyle("grid"); err == nil {
		t.Fatal("ParseStyle(grid) returned nil error")
	}
}

func TestCriteriaNextWraps(t *testing.T) {
	if GroupOffline.Next() != GroupAll {
		t.Fatalf("GroupOffline.Next() = %v, want All", GroupOffline.Next())
	}
	if SortName.Next() != SortRecentActivity {
		t.Fatalf("SortName.Next() = %v, want Recent", SortName.Next())
	}
	if StyleCard.Next() != StyleList {
		t.Fatalf("StyleCard.Next() = %v, want List", StyleCard.Next())
	}
}

func TestEntityValidate(t *testing.T) {
	if err := (Entity{ID: 1, DisplayName: "ok"}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if err := (Entity{ID: 0, DisplayName: "x"}).Validate(); !errors.Is(err, ErrMalformedEntity) {
		t.Fatalf("Validate(id=0) = %v, want ErrMalformedEntity", err)
	}
	if err := (Entity{ID: 2, DisplayName: "  "}).Validate(); !errors.Is(err, ErrMalformedEntity) {
		t.Fatalf("Validate(blank name) = %v, want ErrMalformedEntity", err)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := sample()
	b := Clone(a)
	if !Equal(a, b) {
		t.Fatal("Equal(a, Clone(a)) = false")
	}
	*b[0].GlobalRank = 99
	if a[0].Rank() != 5 {
		t.Fatalf("Clone aliased rank pointer: original rank = %d", a[0].Rank())
	}
	if Equal(a, b) {
		t.Fatal("Equal after rank change = true")
	}
}
