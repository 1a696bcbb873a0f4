package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tcg-collection-tracker/pkg/match"
)

func price(v float64) *float64 {
	return &v
}

func nm(p float64) match.Variant {
	return match.Variant{Condition: "Near Mint", Price: price(p)}
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	cards := []match.Card{
		{Name: "Bolt", Set: "LEA", Number: "161", Variants: []match.Variant{
			{ID: "a", Condition: "NM"},
			{ID: "b", Condition: "LP"},
		}},
		{Name: "Empty", Set: "LEB"},
		{Name: "Bolt", Set: "LEB", Variants: []match.Variant{{ID: "c"}}},
	}

	got := match.Flatten(cards)
	require.Len(t, got, 3)

	assert.Equal(t, 0, got[0].CardIndex)
	assert.Equal(t, "a", got[0].Variant.ID)
	assert.Equal(t, "161", got[0].Number)
	assert.Equal(t, "b", got[1].Variant.ID)
	assert.Equal(t, 2, got[2].CardIndex)
	assert.Equal(t, "LEB", got[2].Set)
}

func TestFlatten_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, match.Flatten(nil))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "Lightning Bolt", b: "Lightning Bolt", want: true},
		{name: "case differs", a: "LIGHTNING bolt", b: "lightning Bolt", want: true},
		{name: "surrounding whitespace", a: "  Bolt\t", b: "bolt", want: true},
		{name: "different", a: "Bolt", b: "Shock", want: false},
		{name: "inner whitespace matters", a: "Light ning", b: "Lightning", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.Equal(tt.a, tt.b))
		})
	}
}

func TestBest_Tiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     []match.Card
		query     match.Query
		wantTier  match.Tier
		wantPrice *float64
	}{
		{
			name: "set match wins over earlier card",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEB", Variants: []match.Variant{nm(1)}},
				{Name: "Bolt", Set: "LEA", Variants: []match.Variant{nm(2)}},
			},
			query:     match.Query{Name: "Bolt", Set: "LEA"},
			wantTier:  match.TierSet,
			wantPrice: price(2),
		},
		{
			name: "no set requested takes first name match",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEB", Variants: []match.Variant{nm(1)}},
				{Name: "Bolt", Set: "LEA", Variants: []match.Variant{nm(2)}},
			},
			query:     match.Query{Name: "bolt"},
			wantTier:  match.TierSet,
			wantPrice: price(1),
		},
		{
			name: "number fallback when set misses",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEB", Number: "100", Variants: []match.Variant{nm(1)}},
				{Name: "Bolt", Set: "2ED", Number: "161", Variants: []match.Variant{nm(3)}},
			},
			query:     match.Query{Name: "Bolt", Set: "LEA", Number: "161"},
			wantTier:  match.TierNumber,
			wantPrice: price(3),
		},
		{
			name: "name fallback when set and number miss",
			cards: []match.Card{
				{Name: "Shock", Set: "LEA", Number: "161", Variants: []match.Variant{nm(9)}},
				{Name: "Bolt", Set: "LEB", Number: "100", Variants: []match.Variant{nm(4)}},
			},
			query:     match.Query{Name: "Bolt", Set: "LEA", Number: "161"},
			wantTier:  match.TierName,
			wantPrice: price(4),
		},
		{
			name: "number tier skipped without requested number",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEB", Number: "161", Variants: []match.Variant{nm(5)}},
			},
			query:     match.Query{Name: "Bolt", Set: "LEA"},
			wantTier:  match.TierName,
			wantPrice: price(5),
		},
		{
			name: "candidate without number never matches number tier",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEB", Variants: []match.Variant{nm(6)}},
				{Name: "Bolt", Set: "LEB", Number: "161", Variants: []match.Variant{nm(7)}},
			},
			query:     match.Query{Name: "Bolt", Set: "LEA", Number: "161"},
			wantTier:  match.TierNumber,
			wantPrice: price(7),
		},
		{
			name: "set comparison ignores case and whitespace",
			cards: []match.Card{
				{Name: "Bolt", Set: "Alpha", Variants: []match.Variant{nm(1)}},
				{Name: "Bolt", Set: " limited edition alpha ", Variants: []match.Variant{nm(8)}},
			},
			query:     match.Query{Name: "BOLT", Set: "Limited Edition Alpha"},
			wantTier:  match.TierSet,
			wantPrice: price(8),
		},
		{
			name: "no name match",
			cards: []match.Card{
				{Name: "Shock", Set: "LEA", Variants: []match.Variant{nm(1)}},
			},
			query:    match.Query{Name: "Bolt"},
			wantTier: match.TierNone,
		},
		{
			name: "matched card without variants yields nothing",
			cards: []match.Card{
				{Name: "Bolt", Set: "LEA"},
			},
			query:    match.Query{Name: "Bolt"},
			wantTier: match.TierNone,
		},
		{
			name:     "empty results",
			query:    match.Query{Name: "Bolt"},
			wantTier: match.TierNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := match.Best(tt.cards, tt.query)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantTier != match.TierNone, got.Matched())
		})
	}
}

func TestBest_ConditionPreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		variants []match.Variant
		wantID   string
	}{
		{
			name: "near mint preferred over first variant",
			variants: []match.Variant{
				{ID: "lp", Condition: "Lightly Played", Price: price(5)},
				{ID: "nm", Condition: "Near Mint", Price: price(10)},
			},
			wantID: "nm",
		},
		{
			name: "abbreviation accepted",
			variants: []match.Variant{
				{ID: "mp", Condition: "Moderately Played", Price: price(2)},
				{ID: "nm", Condition: "nm", Price: price(10)},
			},
			wantID: "nm",
		},
		{
			name: "first near mint wins among several",
			variants: []match.Variant{
				{ID: "nm-foil", Condition: "Near Mint", Printing: "Foil", Price: price(30)},
				{ID: "nm", Condition: "Near Mint", Printing: "Normal", Price: price(10)},
			},
			wantID: "nm-foil",
		},
		{
			name: "first variant when no near mint",
			variants: []match.Variant{
				{ID: "hp", Condition: "Heavily Played", Price: price(1)},
				{ID: "lp", Condition: "Lightly Played", Price: price(3)},
			},
			wantID: "hp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cards := []match.Card{{Name: "Bolt", Variants: tt.variants}}
			got := match.Best(cards, match.Query{Name: "Bolt"})
			require.NotNil(t, got.Variant)
			assert.Equal(t, tt.wantID, got.Variant.ID)
		})
	}
}

func TestBest_OnlyMatchedCardVariants(t *testing.T) {
	t.Parallel()

	// The Near Mint variant belongs to a different printing and must not
	// leak into the matched card's selection.
	cards := []match.Card{
		{Name: "Bolt", Set: "LEA", Variants: []match.Variant{
			{ID: "lea-lp", Condition: "Lightly Played", Price: price(5)},
		}},
		{Name: "Bolt", Set: "LEA", Variants: []match.Variant{
			{ID: "lea2-nm", Condition: "Near Mint", Price: price(50)},
		}},
	}

	got := match.Best(cards, match.Query{Name: "Bolt", Set: "LEA"})
	require.NotNil(t, got.Variant)
	assert.Equal(t, "lea-lp", got.Variant.ID)
	assert.Equal(t, price(5), got.Price)
	assert.Equal(t, &cards[0], got.Card)
}

func TestBest_NilPrice(t *testing.T) {
	t.Parallel()

	cards := []match.Card{{Name: "Bolt", Variants: []match.Variant{{Condition: "NM"}}}}
	got := match.Best(cards, match.Query{Name: "Bolt"})
	assert.True(t, got.Matched())
	assert.Nil(t, got.Price)
}

func TestIsNearMint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "Near Mint", want: true},
		{input: "near mint", want: true},
		{input: " NM ", want: true},
		{input: "nm", want: true},
		{input: "Near Mint Foil", want: false},
		{input: "Lightly Played", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.IsNearMint(tt.input))
		})
	}
}
