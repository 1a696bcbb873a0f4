package justtcg

import "github.com/donaldgifford/tcg-collection-tracker/pkg/match"

// ToMatchCards converts normalized upstream cards into the matcher's input.
func ToMatchCards(cards []RawCard) []match.Card {
	out := make([]match.Card, 0, len(cards))
	for i := range cards {
		out = append(out, ToMatchCard(&cards[i]))
	}
	return out
}

// ToMatchCard converts a single upstream card.
func ToMatchCard(c *RawCard) match.Card {
	variants := make([]match.Variant, 0, len(c.Variants))
	for _, v := range c.Variants {
		variants = append(variants, match.Variant{
			ID:        v.ID,
			Condition: v.Condition,
			Printing:  v.Printing,
			Language:  v.Language,
			Price:     v.Price,
		})
	}
	return match.Card{
		Name:     c.Name,
		Set:      c.Set,
		Number:   c.Number,
		Variants: variants,
	}
}
