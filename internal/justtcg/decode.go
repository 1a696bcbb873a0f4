package justtcg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// Shape identifies which top-level layout a search response used.
type Shape string

// Response shapes tolerated from upstream.
const (
	ShapeArray   Shape = "array"   // [card, ...]
	ShapeWrapped Shape = "wrapped" // {"data": [card, ...]}
	ShapeSingle  Shape = "single"  // card
	ShapeEmpty   Shape = "empty"   // null or empty body
)

// ErrUnexpectedShape is returned when a response body is valid JSON but not
// an array or object.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// DecodeCards detects the response shape and decodes body into cards.
// Entries that are not JSON objects are skipped.
func DecodeCards(body []byte) ([]RawCard, Shape, error) {
	shape, err := DetectShape(body)
	if err != nil {
		return nil, "", err
	}

	var cards []RawCard
	switch shape {
	case ShapeArray:
		cards, err = decodeArray(body)
	case ShapeWrapped:
		cards, err = decodeWrapped(body)
	case ShapeSingle:
		cards, err = decodeSingle(body)
	case ShapeEmpty:
		cards = []RawCard{}
	}
	if err != nil {
		return nil, "", err
	}
	return cards, shape, nil
}

// DetectShape classifies the top-level layout without decoding cards.
func DetectShape(body []byte) (Shape, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ShapeEmpty, nil
	}
	if !json.Valid(trimmed) {
		return "", errors.New("invalid JSON")
	}

	switch trimmed[0] {
	case '[':
		return ShapeArray, nil
	case '{':
		var probe struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return "", err
		}
		if isArray(probe.Data) {
			return ShapeWrapped, nil
		}
		return ShapeSingle, nil
	default:
		return "", fmt.Errorf("%w: top-level %s", ErrUnexpectedShape, kindOf(trimmed))
	}
}

func decodeArray(body []byte) ([]RawCard, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, err
	}
	return decodeEntries(entries)
}

func decodeWrapped(body []byte) ([]RawCard, error) {
	var wrapper struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, err
	}
	return decodeEntries(wrapper.Data)
}

func decodeSingle(body []byte) ([]RawCard, error) {
	return decodeEntries([]json.RawMessage{body})
}

func decodeEntries(entries []json.RawMessage) ([]RawCard, error) {
	cards := make([]RawCard, 0, len(entries))
	for _, entry := range entries {
		if !isObject(entry) {
			continue
		}
		var c apiCard
		if err := json.Unmarshal(entry, &c); err != nil {
			return nil, err
		}
		cards = append(cards, toRawCard(&c))
	}
	return cards, nil
}

func toRawCard(c *apiCard) RawCard {
	return RawCard{
		ID:       string(c.ID),
		Name:     string(c.Name),
		Set:      domain.FirstNonBlank(c.Set, c.SetName, c.SetNameSnake),
		Number:   domain.FirstNonBlank(c.Number, c.CollectorNumber, c.CollectorNumberSnake),
		Variants: decodeVariants(c.Variants),
	}
}

// decodeVariants accepts an array, a single object, or nothing. Entries
// that are not objects are dropped.
func decodeVariants(raw json.RawMessage) []RawVariant {
	var entries []json.RawMessage
	switch {
	case isArray(raw):
		if err := json.Unmarshal(raw, &entries); err != nil {
			return []RawVariant{}
		}
	case isObject(raw):
		entries = []json.RawMessage{raw}
	default:
		return []RawVariant{}
	}

	variants := make([]RawVariant, 0, len(entries))
	for _, entry := range entries {
		if !isObject(entry) {
			continue
		}
		var v apiVariant
		if err := json.Unmarshal(entry, &v); err != nil {
			continue
		}
		variants = append(variants, RawVariant{
			ID:        string(v.ID),
			Condition: string(v.Condition),
			Printing:  string(v.Printing),
			Language:  string(v.Language),
			Price:     v.Price.value,
		})
	}
	return variants
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func kindOf(t []byte) string {
	switch t[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
