// Package search groups global card search hits by card name for display.
package search

import (
	"slices"
	"strings"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// Unknown labels a missing collection name or owner.
const Unknown = "Unknown"

const ownerIDPrefix = 8

// Key is the grouping key for a card name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Owner returns the display label for a hit's owner: the username, else a
// short user id prefix, else Unknown.
func Owner(h *domain.CardHit) string {
	if u := strings.TrimSpace(h.OwnerUsername); u != "" {
		return u
	}
	if id := strings.TrimSpace(h.OwnerID); id != "" {
		if r := []rune(id); len(r) > ownerIDPrefix {
			return string(r[:ownerIDPrefix])
		}
		return id
	}
	return Unknown
}

// Group buckets hits by lower-cased card name. Groups are ordered by key;
// holdings keep hit order. The group's CardName is the first spelling seen.
func Group(hits []domain.CardHit) []domain.SearchGroup {
	index := make(map[string]int)
	groups := []domain.SearchGroup{}

	for i := range hits {
		h := &hits[i]
		key := Key(h.CardName)
		if key == "" {
			continue
		}

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, domain.SearchGroup{Key: key, CardName: h.CardName})
		}

		collection := h.CollectionName
		if strings.TrimSpace(collection) == "" {
			collection = Unknown
		}

		groups[pos].Holdings = append(groups[pos].Holdings, domain.Holding{
			CardName:   h.CardName,
			SetName:    h.SetName,
			Quantity:   h.Quantity,
			Collection: collection,
			Owner:      Owner(h),
		})
	}

	slices.SortStableFunc(groups, func(a, b domain.SearchGroup) int {
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}
