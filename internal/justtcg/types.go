package justtcg

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

// RawCard is one logical card from a search response after field-alias
// resolution. Variants is never nil for decoded cards.
type RawCard struct {
	ID       string
	Name     string
	Set      string
	Number   string
	Variants []RawVariant
}

// RawVariant is one priced condition/printing/language combination.
type RawVariant struct {
	ID        string
	Condition string
	Printing  string
	Language  string
	Price     *float64
}

// apiCard is the wire form of a card. Set and number have appeared under
// several keys.
type apiCard struct {
	ID                   domain.FlexString `json:"id"`
	Name                 domain.FlexString `json:"name"`
	Set                  domain.FlexString `json:"set"`
	SetName              domain.FlexString `json:"setName"`
	SetNameSnake         domain.FlexString `json:"set_name"`
	Number               domain.FlexString `json:"number"`
	CollectorNumber      domain.FlexString `json:"collectorNumber"`
	CollectorNumberSnake domain.FlexString `json:"collector_number"`
	Variants             json.RawMessage   `json:"variants"`
}

type apiVariant struct {
	ID        domain.FlexString `json:"id"`
	Condition domain.FlexString `json:"condition"`
	Printing  domain.FlexString `json:"printing"`
	Language  domain.FlexString `json:"language"`
	Price     flexPrice         `json:"price"`
}

// flexPrice accepts a JSON number or a numeric string. Anything else is
// treated as no price.
type flexPrice struct {
	value *float64
}

func (p *flexPrice) UnmarshalJSON(data []byte) error {
	p.value = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil //nolint:nilerr // malformed price means no price
		}
		text = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil //nolint:nilerr // non-numeric price means no price
	}
	p.value = &f
	return nil
}

