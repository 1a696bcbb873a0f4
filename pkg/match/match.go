// Package match implements the deterministic policy that picks a single
// price quote for a loosely-specified card reference out of upstream search
// results.
package match

import "strings"

// Tier identifies which matching level produced a result.
type Tier string

// Tier constants, most specific first.
const (
	TierSet    Tier = "set"
	TierNumber Tier = "number"
	TierName   Tier = "name"
	TierNone   Tier = "none"
)

// Variant is one sellable condition/printing/language combination.
type Variant struct {
	ID        string
	Condition string
	Printing  string
	Language  string
	Price     *float64
}

// Card is one logical card as returned upstream, after shape normalization.
type Card struct {
	Name     string
	Set      string
	Number   string
	Variants []Variant
}

// Candidate is a single variant annotated with its owning card's identity.
// CardIndex is the position of the owning card in upstream order.
type Candidate struct {
	CardIndex int
	Name      string
	Set       string
	Number    string
	Variant   Variant
}

// Query holds the requested identity fields.
type Query struct {
	Name   string
	Set    string
	Number string
}

// Result is the outcome of Best. Variant and Price are nil when Tier is
// TierNone.
type Result struct {
	Tier    Tier
	Card    *Card
	Variant *Variant
	Price   *float64
}

// Matched reports whether any tier produced a candidate.
func (r Result) Matched() bool {
	return r.Tier != TierNone
}

// Flatten produces one Candidate per variant, in upstream order.
func Flatten(cards []Card) []Candidate {
	var out []Candidate
	for i := range cards {
		c := &cards[i]
		for _, v := range c.Variants {
			out = append(out, Candidate{
				CardIndex: i,
				Name:      c.Name,
				Set:       c.Set,
				Number:    c.Number,
				Variant:   v,
			})
		}
	}
	return out
}

// Equal compares two identity strings case-insensitively after trimming
// surrounding whitespace.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Select applies the tiered policy and returns the candidates of the first
// tier that matched anything, preserving their order.
func Select(candidates []Candidate, q Query) ([]Candidate, Tier) {
	byName := filter(candidates, func(c *Candidate) bool {
		return Equal(c.Name, q.Name)
	})
	if len(byName) == 0 {
		return nil, TierNone
	}

	bySet := byName
	if present(q.Set) {
		bySet = filter(byName, func(c *Candidate) bool {
			return Equal(c.Set, q.Set)
		})
	}
	if len(bySet) > 0 {
		return bySet, TierSet
	}

	if present(q.Number) {
		byNumber := filter(byName, func(c *Candidate) bool {
			return present(c.Number) && Equal(c.Number, q.Number)
		})
		if len(byNumber) > 0 {
			return byNumber, TierNumber
		}
	}

	return byName, TierName
}

func filter(in []Candidate, keep func(*Candidate) bool) []Candidate {
	var out []Candidate
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

// Best resolves a query against upstream cards. The matched card is the
// owner of the first matching candidate; its Near Mint variant is preferred,
// falling back to its first variant.
func Best(cards []Card, q Query) Result {
	matched, tier := Select(Flatten(cards), q)
	if tier == TierNone {
		return Result{Tier: TierNone}
	}

	owner := matched[0].CardIndex
	var variants []Candidate
	for i := range matched {
		if matched[i].CardIndex == owner {
			variants = append(variants, matched[i])
		}
	}

	chosen := variants[0].Variant
	for i := range variants {
		if IsNearMint(variants[i].Variant.Condition) {
			chosen = variants[i].Variant
			break
		}
	}

	return Result{
		Tier:    tier,
		Card:    &cards[owner],
		Variant: &chosen,
		Price:   chosen.Price,
	}
}
