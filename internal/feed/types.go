package feed

import (
	"strings"
	"time"

	"github.com/five82/roster/internal/roster"
)

// FriendsResponse mirrors /api/friends.
type FriendsResponse struct {
	Friends []Relation `json:"friends"`
}

// Relation is one friendship edge as reported by the feed.
type Relation struct {
	TargetID     int64  `json:"target_id"`
	RelationType string `json:"relation_type"`
	Mutual       bool   `json:"mutual"`
	Target       *User  `json:"target"`
}

// User is the public profile of a relation's target.
type User struct {
	ID          int64           `json:"id"`
	Username    string          `json:"username"`
	IsOnline    bool            `json:"is_online"`
	LastVisit   *time.Time      `json:"last_visit"`
	CountryCode string          `json:"country_code"`
	Statistics  *UserStatistics `json:"statistics"`
}

// UserStatistics carries ranking data. GlobalRank is null for inactive players.
type UserStatistics struct {
	GlobalRank *int `json:"global_rank"`
}

// Entity converts the user into a roster entity.
func (u User) Entity() roster.Entity {
	e := roster.Entity{
		ID:          u.ID,
		DisplayName: strings.TrimSpace(u.Username),
		Online:      u.IsOnline,
		CountryCode: strings.ToUpper(strings.TrimSpace(u.CountryCode)),
	}
	if u.LastVisit != nil {
		e.LastActivity = *u.LastVisit
	}
	if u.Statistics != nil && u.Statistics.GlobalRank != nil {
		rank := *u.Statistics.GlobalRank
		e.GlobalRank = &rank
	}
	return e
}

// Entities maps relations to roster entities. Relations without an embedded
// target fall back to an ID-only entity so the malformed record is caught
// when its panel is built rather than silently dropped.
func Entities(relations []Relation) []roster.Entity {
	if len(relations) == 0 {
		return nil
	}
	out := make([]roster.Entity, 0, len(relations))
	for _, rel := range relations {
		if rel.Target == nil {
			out = append(out, roster.Entity{ID: rel.TargetID})
			continue
		}
		out = append(out, rel.Target.Entity())
	}
	return out
}
