package analytics

import (
	"strings"

	"huntly/internal/locations"
	"huntly/internal/participants"
)

// CategoryRule assigns locations to a named discovery category. A location
// matches when its code contains any CodeContains fragment, its name
// contains any NameContains fragment, or its location number equals any
// LocationNumbers value. Rules are evaluated in slice order and the first
// match wins.
type CategoryRule struct {
	ID              string
	Name            string
	CodeContains    []string
	NameContains    []string
	LocationNumbers []string
}

// Matches reports whether the location belongs to this category.
func (r CategoryRule) Matches(loc locations.Location) bool {
	code := strings.ToLower(loc.Code)
	name := strings.ToLower(loc.Name)
	for _, frag := range r.CodeContains {
		if strings.Contains(code, frag) {
			return true
		}
	}
	for _, frag := range r.NameContains {
		if strings.Contains(name, frag) {
			return true
		}
	}
	for _, num := range r.LocationNumbers {
		if loc.LocationNumber == num {
			return true
		}
	}
	return false
}

// DefaultCategoryRules returns the campaign's discovery categories: the
// promo booth and the floor-01 entrance placements.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			ID:           "booth",
			Name:         "Booth",
			CodeContains: []string{"bth"},
			NameContains: []string{"booth"},
		},
		{
			ID:              "floor01",
			Name:            "Floor 01",
			CodeContains:    []string{"flr-01"},
			NameContains:    []string{"floor 01"},
			LocationNumbers: []string{"01"},
		},
	}
}

// DiscoveryStat is the per-category attribution result.
type DiscoveryStat struct {
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	VisitorCount  int    `json:"visitor_count"`
	DiscoveryRate int    `json:"discovery_rate"`
}

// ClassifyDiscovery attributes each scanning user to at most one category
// based on the location of their first scan event. The rate denominator is
// all users with at least one scan, not just attributed ones, so the rates
// never sum above 100 and unattributed users dilute every category.
func ClassifyDiscovery(rules []CategoryRule, locs []locations.Location, users []participants.Summary) []DiscoveryStat {
	categoryByCode := make(map[string]string, len(locs))
	for _, loc := range locs {
		for _, rule := range rules {
			if rule.Matches(loc) {
				categoryByCode[loc.Code] = rule.ID
				break
			}
		}
	}

	visitors := make(map[string]int, len(rules))
	scanningUsers := 0
	for i := range users {
		user := &users[i]
		if len(user.Events) == 0 {
			continue
		}
		scanningUsers++
		first := user.Events[0]
		if !first.HasCode() {
			continue
		}
		if cat, ok := categoryByCode[first.Code]; ok {
			visitors[cat]++
		}
	}

	stats := make([]DiscoveryStat, 0, len(rules))
	for _, rule := range rules {
		stats = append(stats, DiscoveryStat{
			CategoryID:    rule.ID,
			Name:          rule.Name,
			VisitorCount:  visitors[rule.ID],
			DiscoveryRate: percentOf(visitors[rule.ID], scanningUsers),
		})
	}
	return stats
}
