package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedEntity is returned when an entity is missing a required field.
var ErrMalformedEntity = errors.New("malformed entity")

// Entity is one friend in the roster.
type Entity struct {
	ID           int64
	DisplayName  string
	Online       bool
	LastActivity time.Time
	GlobalRank   *int // nil when the user has no rank
	CountryCode  string
}

// HasRank reports whether the entity carries a global rank.
func (e Entity) HasRank() bool {
	return e.GlobalRank != nil
}

// Rank returns the global rank, or zero when absent.
func (e Entity) Rank() int {
	if e.GlobalRank == nil {
		return 0
	}
	return *e.GlobalRank
}

// Validate checks the fields a panel needs to display the entity.
func (e Entity) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrMalformedEntity, e.ID)
	}
	if strings.TrimSpace(e.DisplayName) == "" {
		return fmt.Errorf("%w: entity %d has no display name", ErrMalformedEntity, e.ID)
	}
	return nil
}

// Equal reports whether two entities carry the same values.
func (e Entity) Equal(o Entity) bool {
	if e.ID != o.ID ||
		e.DisplayName != o.DisplayName ||
		e.Online != o.Online ||
		!e.LastActivity.Equal(o.LastActivity) ||
		e.CountryCode != o.CountryCode {
		return false
	}
	if e.HasRank() != o.HasRank() {
		return false
	}
	return e.Rank() == o.Rank()
}

// Equal reports whether two entity sets match element by element.
func Equal(a, b []Entity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of entities. Rank pointers are copied so
// the clone never aliases the caller's data.
func Clone(entities []Entity) []Entity {
	if len(entities) == 0 {
		return nil
	}
	dup := make([]Entity, len(entities))
	for i, e := range entities {
		if e.GlobalRank != nil {
			rank := *e.GlobalRank
			e.GlobalRank = &rank
		}
		dup[i] = e
	}
	return dup
}
