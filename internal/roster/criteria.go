package roster

import (
	"fmt"
	"strings"
)

// Group selects which entities are shown by online status.
type Group int

const (
	GroupAll Group = iota
	GroupOnline
	GroupOffline
)

var groupNames = []string{"All", "Online", "Offline"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Next cycles to the following group, wrapping around.
func (g Group) Next() Group {
	return Group((int(g) + 1) % len(groupNames))
}

// ParseGroup resolves a case-insensitive group name. Blank input yields GroupAll.
func ParseGroup(s string) (Group, error) {
	i, err := parseEnum(s, groupNames)
	if err != nil {
		return GroupAll, fmt.Errorf("parse group: %w", err)
	}
	return Group(i), nil
}

// SortBy selects the ordering of the roster.
type SortBy int

const (
	SortRecentActivity SortBy = iota
	SortRank
	SortName
)

var sortNames = []string{"Recent", "Rank", "Name"}

func (s SortBy) String() string {
	if s < 0 || int(s) >= len(sortNames) {
		return fmt.Sprintf("SortBy(%d)", int(s))
	}
	return sortNames[s]
}

// Next cycles to the following sort criterion, wrapping around.
func (s SortBy) Next() SortBy {
	return SortBy((int(s) + 1) % len(sortNames))
}

// ParseSortBy resolves a case-insensitive sort name. Blank input yields SortRecentActivity.
func ParseSortBy(s string) (SortBy, error) {
	i, err := parseEnum(s, sortNames)
	if err != nil {
		return SortRecentActivity, fmt.Errorf("parse sort: %w", err)
	}
	return SortBy(i), nil
}

// Style selects the panel representation used for a render pass.
type Style int

const (
	StyleCard Style = iota
	StyleList
	StyleBrick
)

var styleNames = []string{"Card", "List", "Brick"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Next cycles to the following style, wrapping around.
func (s Style) Next() Style {
	return Style((int(s) + 1) % len(styleNames))
}

// ParseStyle resolves a case-insensitive style name. Blank input yields StyleCard.
func ParseStyle(s string) (Style, error) {
	i, err := parseEnum(s, styleNames)
	if err != nil {
		return StyleCard, fmt.Errorf("parse style: %w", err)
	}
	return Style(i), nil
}

func parseEnum(s string, names []string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, nil
	}
	for i, name := range names {
		if strings.EqualFold(trimmed, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q (want one of %s)", trimmed, strings.Join(names, ", "))
}
