package resolver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/tcg-collection-tracker/internal/justtcg"
	"github.com/donaldgifford/tcg-collection-tracker/internal/justtcg/mocks"
	"github.com/donaldgifford/tcg-collection-tracker/internal/resolver"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

func price(v float64) *float64 {
	return &v
}

func card(name, set, number string, variants ...justtcg.RawVariant) justtcg.RawCard {
	if variants == nil {
		variants = []justtcg.RawVariant{}
	}
	return justtcg.RawCard{Name: name, Set: set, Number: number, Variants: variants}
}

func variant(cond string, p *float64) justtcg.RawVariant {
	return justtcg.RawVariant{Condition: cond, Price: p}
}

func byName(name string) interface{} {
	return mock.MatchedBy(func(req justtcg.SearchRequest) bool {
		return req.Name == name
	})
}

func TestResolve_PreservesOrderAndLength(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	for i, name := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		m.EXPECT().
			Search(mock.Anything, byName(name)).
			Return(&justtcg.SearchResponse{Cards: []justtcg.RawCard{
				card(name, "", "", variant("NM", price(float64(i+1)))),
			}}, nil).
			Once()
	}

	r := resolver.New(m)
	refs := []domain.CardReference{
		{Name: "Alpha"}, {Name: "Bravo"}, {Name: "Charlie"}, {Name: "Delta"},
	}
	got := r.Resolve(context.Background(), refs)

	require.Len(t, got, len(refs))
	for i := range refs {
		assert.Equal(t, refs[i].Name, got[i].Name)
		assert.Equal(t, domain.CurrencyUSD, got[i].Currency)
		require.NotNil(t, got[i].Price)
		assert.InDelta(t, float64(i+1), *got[i].Price, 0.0001)
		assert.Empty(t, got[i].Error)
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	got := resolver.New(m).Resolve(context.Background(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolve_SearchRequest(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, justtcg.SearchRequest{
			Name:   "Lightning Bolt",
			Set:    "Alpha",
			Number: "161",
			Limit:  25,
		}).
		Return(&justtcg.SearchResponse{}, nil).
		Once()

	r := resolver.New(m, resolver.WithPageSize(25))
	got := r.Resolve(context.Background(), []domain.CardReference{
		{Name: "Lightning Bolt", SetName: "Alpha", CollectorNumber: "161"},
	})
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Price)
	assert.Empty(t, got[0].Error)
}

func TestResolve_MatchTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ref       domain.CardReference
		cards     []justtcg.RawCard
		wantPrice *float64
	}{
		{
			name: "set match",
			ref:  domain.CardReference{Name: "Bolt", SetName: "Beta"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "", variant("NM", price(400))),
				card("Bolt", "Beta", "", variant("NM", price(300))),
			},
			wantPrice: price(300),
		},
		{
			name: "number match",
			ref:  domain.CardReference{Name: "Bolt", SetName: "Gamma", CollectorNumber: "162"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "161", variant("NM", price(400))),
				card("Bolt", "Beta", "162", variant("NM", price(300))),
			},
			wantPrice: price(300),
		},
		{
			name: "name match",
			ref:  domain.CardReference{Name: "bolt ", SetName: "Gamma"},
			cards: []justtcg.RawCard{
				card("Shock", "Gamma", "", variant("NM", price(1))),
				card("Bolt", "Alpha", "", variant("NM", price(400))),
			},
			wantPrice: price(400),
		},
		{
			name: "no match",
			ref:  domain.CardReference{Name: "Counterspell"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "", variant("NM", price(400))),
			},
		},
		{
			name: "near mint preferred",
			ref:  domain.CardReference{Name: "Bolt"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "",
					variant("Lightly Played", price(350)),
					variant("Near Mint", price(400)),
				),
			},
			wantPrice: price(400),
		},
		{
			name: "zero price is found",
			ref:  domain.CardReference{Name: "Bolt"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "", variant("NM", price(0))),
			},
			wantPrice: price(0),
		},
		{
			name: "matched variant without price",
			ref:  domain.CardReference{Name: "Bolt"},
			cards: []justtcg.RawCard{
				card("Bolt", "Alpha", "", variant("NM", nil)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockCardSearcher(t)
			m.EXPECT().
				Search(mock.Anything, mock.Anything).
				Return(&justtcg.SearchResponse{Cards: tt.cards}, nil).
				Once()

			got := resolver.New(m).Resolve(context.Background(), []domain.CardReference{tt.ref})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantPrice, got[0].Price)
			assert.Empty(t, got[0].Error)
		})
	}
}

func TestResolve_IsolatesFailures(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, byName("First")).
		Return(&justtcg.SearchResponse{Cards: []justtcg.RawCard{
			card("First", "", "", variant("NM", price(1))),
		}}, nil).
		Once()
	m.EXPECT().
		Search(mock.Anything, byName("Middle")).
		Return(nil, &justtcg.APIError{StatusCode: 503, Body: "unavailable"}).
		Once()
	m.EXPECT().
		Search(mock.Anything, byName("Last")).
		Return(&justtcg.SearchResponse{Cards: []justtcg.RawCard{
			card("Last", "", "", variant("NM", price(3))),
		}}, nil).
		Once()

	got := resolver.New(m).Resolve(context.Background(), []domain.CardReference{
		{Name: "First"}, {Name: "Middle"}, {Name: "Last"},
	})
	require.Len(t, got, 3)

	assert.Equal(t, price(1), got[0].Price)
	assert.Empty(t, got[0].Error)

	assert.Equal(t, "Middle", got[1].Name)
	assert.Nil(t, got[1].Price)
	assert.Equal(t, "API error: 503 unavailable", got[1].Error)

	assert.Equal(t, price(3), got[2].Price)
	assert.Empty(t, got[2].Error)
}

func TestResolve_NetworkError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(nil, errors.New("executing search request: connection refused")).
		Once()

	got := resolver.New(m).Resolve(context.Background(), []domain.CardReference{{Name: "Bolt"}})
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Price)
	assert.Contains(t, got[0].Error, "connection refused")
}

func TestResolve_EmptyNameSkipsUpstream(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, byName("Bolt")).
		Return(&justtcg.SearchResponse{}, nil).
		Once()

	got := resolver.New(m).Resolve(context.Background(), []domain.CardReference{
		{Name: "  "}, {Name: "Bolt"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "card name is required", got[0].Error)
	assert.Nil(t, got[0].Price)
	assert.Empty(t, got[1].Error)
}

func TestResolve_RecoversPanics(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, byName("Boom")).
		RunAndReturn(func(context.Context, justtcg.SearchRequest) (*justtcg.SearchResponse, error) {
			panic("decoder exploded")
		}).
		Once()
	m.EXPECT().
		Search(mock.Anything, byName("Fine")).
		Return(&justtcg.SearchResponse{Cards: []justtcg.RawCard{
			card("Fine", "", "", variant("NM", price(2))),
		}}, nil).
		Once()

	got := resolver.New(m).Resolve(context.Background(), []domain.CardReference{
		{Name: "Boom"}, {Name: "Fine"},
	})
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Price)
	assert.Contains(t, got[0].Error, "decoder exploded")
	assert.Equal(t, price(2), got[1].Price)
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, mock.Anything).
		Return(&justtcg.SearchResponse{Cards: []justtcg.RawCard{
			card("Bolt", "Alpha", "", variant("LP", price(5)), variant("NM", price(7))),
		}}, nil).
		Times(2)

	r := resolver.New(m)
	refs := []domain.CardReference{{Name: "Bolt", SetName: "Alpha"}}
	first := r.Resolve(context.Background(), refs)
	second := r.Resolve(context.Background(), refs)
	assert.Equal(t, first, second)
}

func TestResolve_ShapesThroughHTTP(t *testing.T) {
	t.Parallel()

	const cardJSON = `{"name":"Bolt","set":"Alpha","variants":[{"condition":"Near Mint","price":"12.50"}]}`

	bodies := map[string]string{
		"array":   "[" + cardJSON + "]",
		"wrapped": `{"data":[` + cardJSON + `]}`,
		"single":  cardJSON,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			client := justtcg.NewHTTPClient("k", justtcg.WithBaseURL(srv.URL))
			got := resolver.New(client).Resolve(context.Background(), []domain.CardReference{
				{Name: "Bolt", SetName: "Alpha"},
			})
			require.Len(t, got, 1)
			require.NotNil(t, got[0].Price)
			assert.InDelta(t, 12.5, *got[0].Price, 0.0001)
		})
	}
}

func TestResolve_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockCardSearcher(t)
	m.EXPECT().
		Search(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ justtcg.SearchRequest) (*justtcg.SearchResponse, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &justtcg.SearchResponse{Cards: []justtcg.RawCard{
				card("Bolt", "", "", variant("NM", price(1))),
			}}, nil
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := resolver.New(m).Resolve(context.WithoutCancel(ctx), []domain.CardReference{{Name: "Bolt"}})
	require.Len(t, got, 1)
	assert.Equal(t, price(1), got[0].Price)
}

func TestReady(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		r := resolver.New(justtcg.NewHTTPClient(""))
		require.ErrorIs(t, r.Ready(), justtcg.ErrMissingAPIKey)
	})

	t.Run("configured key", func(t *testing.T) {
		t.Parallel()
		r := resolver.New(justtcg.NewHTTPClient("secret"))
		require.NoError(t, r.Ready())
	})

	t.Run("searcher without credential check", func(t *testing.T) {
		t.Parallel()
		r := resolver.New(mocks.NewMockCardSearcher(t))
		require.NoError(t, r.Ready())
	})
}

func TestResolve_ErrorMessageIsUpstreamText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(strings.Repeat(" ", 3) + "slow down" + "\n"))
	}))
	defer srv.Close()

	client := justtcg.NewHTTPClient("k", justtcg.WithBaseURL(srv.URL))
	got := resolver.New(client).Resolve(context.Background(), []domain.CardReference{{Name: "Bolt"}})
	require.Len(t, got, 1)
	assert.Equal(t, "API error: 429 slow down", got[0].Error)
}
