// Package domain defines the core business types for the TCG collection tracker.
package domain

import (
	"encoding/json"
	"time"
)

// CurrencyUSD is the only currency price results are reported in.
const CurrencyUSD = "USD"

// CardReference is a caller's loose identification of a physical card
// printing. Only Name is required.
type CardReference struct {
	Name            string `json:"name"                      doc:"Card name" example:"Lightning Bolt"`
	SetName         string `json:"setName,omitempty"         doc:"Set name filter" example:"Limited Edition Alpha"`
	CollectorNumber string `json:"collectorNumber,omitempty" doc:"Collector number" example:"161"`
}

// cardReferenceJSON accepts the key spellings that have been sent by
// different client revisions. Numeric values are kept as their text.
type cardReferenceJSON struct {
	Name                 FlexString `json:"name"`
	SetName              FlexString `json:"setName"`
	Set                  FlexString `json:"set"`
	SetNameSnake         FlexString `json:"set_name"`
	CollectorNumber      FlexString `json:"collectorNumber"`
	Number               FlexString `json:"number"`
	CollectorNumberSnake FlexString `json:"collector_number"`
}

// UnmarshalJSON decodes a reference, accepting set/set_name and
// number/collector_number as aliases.
func (r *CardReference) UnmarshalJSON(data []byte) error {
	var raw cardReferenceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = CardReference{
		Name:            FirstNonBlank(raw.Name),
		SetName:         FirstNonBlank(raw.SetName, raw.Set, raw.SetNameSnake),
		CollectorNumber: FirstNonBlank(raw.CollectorNumber, raw.Number, raw.CollectorNumberSnake),
	}
	return nil
}

// PriceResult is the resolved market price for one CardReference. Price is
// nil when no quote was found or the lookup failed; Error is set only for
// failures.
type PriceResult struct {
	Name     string   `json:"name"            doc:"Requested card name"`
	Price    *float64 `json:"price"           doc:"Resolved price, null when unavailable"`
	Currency string   `json:"currency"        doc:"Currency code" example:"USD"`
	Error    string   `json:"error,omitempty" doc:"Lookup failure, absent when the card was simply not found"`
}

// Found reports whether a price was resolved.
func (p *PriceResult) Found() bool {
	return p.Price != nil
}

// Profile is the public identity attached to a user's collections.
type Profile struct {
	UserID      string    `json:"user_id"                db:"user_id"`
	Username    string    `json:"username,omitempty"     db:"username"`
	DisplayName string    `json:"display_name,omitempty" db:"display_name"`
	CreatedAt   time.Time `json:"created_at"             db:"created_at"`
}

// Collection is a named set of cards imported by one user.
type Collection struct {
	ID         string    `json:"id"          db:"id"`
	Name       string    `json:"name"        db:"name"`
	UserID     string    `json:"user_id"     db:"user_id"`
	CardCount  int       `json:"card_count"  db:"card_count"`
	ImportedAt time.Time `json:"imported_at" db:"imported_at"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// Card is one inventory row within a collection.
type Card struct {
	ID              string `json:"id,omitempty"               db:"id"`
	CollectionID    string `json:"collection_id,omitempty"    db:"collection_id"`
	Name            string `json:"card_name"                  db:"card_name"`
	Quantity        int    `json:"quantity"                   db:"quantity"`
	SetName         string `json:"set_name,omitempty"         db:"set_name"`
	CollectorNumber string `json:"collector_number,omitempty" db:"collector_number"`
}

// Reference converts an inventory row into a price lookup reference.
func (c *Card) Reference() CardReference {
	return CardReference{
		Name:            c.Name,
		SetName:         c.SetName,
		CollectorNumber: c.CollectorNumber,
	}
}

// CardHit is one row of a global card search, joined with its collection
// and owner.
type CardHit struct {
	CardName       string `json:"card_name"`
	SetName        string `json:"set_name,omitempty"`
	Quantity       int    `json:"quantity"`
	CollectionID   string `json:"collection_id"`
	CollectionName string `json:"collection_name"`
	OwnerID        string `json:"owner_id"`
	OwnerUsername  string `json:"owner_username,omitempty"`
}

// Holding is one owner's copy of a card in a search group.
type Holding struct {
	CardName   string `json:"card_name"`
	SetName    string `json:"set_name,omitempty"`
	Quantity   int    `json:"quantity"`
	Collection string `json:"collection"`
	Owner      string `json:"owner"`
}

// SearchGroup collects every holding of one card name.
type SearchGroup struct {
	Key      string    `json:"key"`
	CardName string    `json:"card_name"`
	Holdings []Holding `json:"holdings"`
}

// ImportReport summarizes a CSV import.
type ImportReport struct {
	Parsed  int `json:"parsed"`
	Skipped int `json:"skipped"`
}
