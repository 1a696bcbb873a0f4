package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) []fixtureCard {
	t.Helper()
	cards, err := loadFixture(filepath.Join("testdata", "cards.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return cards
}

func doSearch(t *testing.T, h http.HandlerFunc, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/cards"+query, http.NoBody)
	req.Header.Set("X-API-Key", "test-key")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var cards []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&cards); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return cards
}

func TestLoadFixture(t *testing.T) {
	cards := loadTestFixture(t)
	if len(cards) == 0 {
		t.Fatal("expected cards in fixture")
	}
	for _, c := range cards {
		if c.set == "" {
			t.Errorf("card %q has no set under any key", c.name)
		}
	}
}

func TestCardsHandler_MissingKey(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	req := httptest.NewRequest(http.MethodGet, "/v1/cards?q=opt", http.NoBody)
	w := httptest.NewRecorder()

	h(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCardsHandler_WrongKey(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "expected")
	w := doSearch(t, h, "?q=opt")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCardsHandler_NameFilter(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	w := doSearch(t, h, "?q=lightning+bolt&game=magic-the-gathering")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	cards := decodeArray(t, w)
	if len(cards) != 3 {
		t.Fatalf("cards=%d, want 3", len(cards))
	}
	for _, c := range cards {
		if !strings.EqualFold(c["name"].(string), "Lightning Bolt") {
			t.Errorf("unexpected card %v", c["name"])
		}
	}
}

func TestCardsHandler_SetParam(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	w := doSearch(t, h, "?q=lightning+bolt&set=Magic+2010")

	cards := decodeArray(t, w)
	if len(cards) != 1 {
		t.Fatalf("cards=%d, want 1", len(cards))
	}
	if cards[0]["id"] != "mtg-m10-146" {
		t.Errorf("id=%v, want mtg-m10-146", cards[0]["id"])
	}
}

func TestCardsHandler_InlineSet(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	w := doSearch(t, h, "?q=lightning+bolt+set:%22Double+Masters%22")

	cards := decodeArray(t, w)
	if len(cards) != 1 {
		t.Fatalf("cards=%d, want 1", len(cards))
	}
	if cards[0]["id"] != "mtg-2xm-117" {
		t.Errorf("id=%v, want mtg-2xm-117", cards[0]["id"])
	}
}

func TestCardsHandler_Limit(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	w := doSearch(t, h, "?q=lightning&limit=2")

	if got := len(decodeArray(t, w)); got != 2 {
		t.Errorf("cards=%d, want 2", got)
	}
}

func TestCardsHandler_NoResults(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeArray, "")
	w := doSearch(t, h, "?q=nonexistent_xyz_card")

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body=%q, want []", w.Body.String())
	}
}

func TestCardsHandler_WrappedShape(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeWrapped, "")
	w := doSearch(t, h, "?q=opt")

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0]["name"] != "Opt" {
		t.Errorf("data=%v, want one Opt", resp.Data)
	}
}

func TestCardsHandler_SingleShape(t *testing.T) {
	h := cardsHandler(testLogger(), loadTestFixture(t), shapeSingle, "")

	w := doSearch(t, h, "?q=black+lotus")
	var card map[string]any
	if err := json.NewDecoder(w.Body).Decode(&card); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if card["id"] != "mtg-lea-232" {
		t.Errorf("id=%v, want mtg-lea-232", card["id"])
	}

	w = doSearch(t, h, "?q=nonexistent_xyz_card")
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Errorf("body=%q, want null", w.Body.String())
	}
}

func TestValidShape(t *testing.T) {
	for _, s := range []string{shapeArray, shapeWrapped, shapeSingle} {
		if !validShape(s) {
			t.Errorf("validShape(%q)=false", s)
		}
	}
	if validShape("xml") {
		t.Error("validShape(xml)=true")
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
