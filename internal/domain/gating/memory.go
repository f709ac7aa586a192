// Package gating decides which proximity matches are new enough to alert on.
//
// A Memory holds the (store, item) keys a user was already alerted for. A key
// stays in memory while it keeps appearing in consecutive check results and is
// forgotten the first time it drops out, so re-entering range alerts again.
// Memory is not safe for concurrent use; callers serialize access per user.
package gating

import (
	"nexttoyou/internal/domain/entity"

	"github.com/google/uuid"
)

// Finding is a match key that should produce exactly one alert.
type Finding struct {
	Key            string
	StoreID        uuid.UUID
	StoreName      string
	ItemName       string
	Price          float64
	DistanceMeters int
	Latitude       float64
	Longitude      float64
}

// Memory is the per-user set of already-alerted match keys.
type Memory struct {
	seen map[string]struct{}
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{seen: make(map[string]struct{})}
}

// Len returns the number of remembered keys.
func (m *Memory) Len() int {
	return len(m.seen)
}

// Seen reports whether key was alerted in the current episode.
func (m *Memory) Seen(key string) bool {
	_, ok := m.seen[key]

	return ok
}

// Reset forgets every key.
func (m *Memory) Reset() {
	clear(m.seen)
}

// NewFindings returns the matched items whose key is not in memory and whose
// store is within notificationRadius meters, in match order. It does not
// modify memory; call Commit with the keys actually delivered.
func (m *Memory) NewFindings(matches []entity.ProximityMatch, notificationRadius float64) []Finding {
	var findings []Finding

	for _, match := range matches {
		if float64(match.DistanceMeters) > notificationRadius {
			continue
		}

		for _, item := range match.MatchedItems {
			key := entity.MatchKey(match.StoreID, item.Name)
			if m.Seen(key) {
				continue
			}

			findings = append(findings, Finding{
				Key:            key,
				StoreID:        match.StoreID,
				StoreName:      match.StoreName,
				ItemName:       item.Name,
				Price:          item.Price,
				DistanceMeters: match.DistanceMeters,
				Latitude:       match.Latitude,
				Longitude:      match.Longitude,
			})
		}
	}

	return findings
}

// Commit records a completed check: keys absent from matches are evicted and
// emitted keys are added. Keys that matched but were not emitted (outside the
// notification radius, or failed to publish) stay unseen and can alert later.
func (m *Memory) Commit(matches []entity.ProximityMatch, emitted []string) {
	current := CurrentKeys(matches)

	for key := range m.seen {
		if _, ok := current[key]; !ok {
			delete(m.seen, key)
		}
	}

	for _, key := range emitted {
		m.seen[key] = struct{}{}
	}
}

// CurrentKeys returns the key of every matched item across matches.
func CurrentKeys(matches []entity.ProximityMatch) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, match := range matches {
		for _, item := range match.MatchedItems {
			keys[entity.MatchKey(match.StoreID, item.Name)] = struct{}{}
		}
	}

	return keys
}
