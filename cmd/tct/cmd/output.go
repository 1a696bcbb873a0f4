package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/tcg-collection-tracker/internal/api/client"
	domain "github.com/donaldgifford/tcg-collection-tracker/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *p)
}

func printPriceTable(w io.Writer, prices []domain.PriceResult) error {
	tw := newTabWriter(w)
	tw.writef("NAME\tPRICE\tERROR\n")
	for i := range prices {
		tw.writef("%s\t%s\t%s\n",
			truncate(prices[i].Name, 40),
			formatPrice(prices[i].Price),
			prices[i].Error,
		)
	}
	return tw.finish()
}

func printCollectionsTable(w io.Writer, cols []domain.Collection) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tCARDS\tIMPORTED\n")
	for i := range cols {
		tw.writef("%s\t%s\t%d\t%s\n",
			cols[i].ID,
			truncate(cols[i].Name, 40),
			cols[i].CardCount,
			cols[i].ImportedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printCollectionDetail(w io.Writer, c *domain.Collection) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", c.ID)
	tw.writef("Name:\t%s\n", c.Name)
	tw.writef("Cards:\t%d\n", c.CardCount)
	tw.writef("Imported:\t%s\n", c.ImportedAt.Format(timeLayout))
	return tw.finish()
}

func printCardsTable(w io.Writer, cards []domain.Card) error {
	tw := newTabWriter(w)
	tw.writef("QTY\tNAME\tSET\tNUMBER\n")
	for i := range cards {
		tw.writef("%d\t%s\t%s\t%s\n",
			cards[i].Quantity,
			truncate(cards[i].Name, 40),
			truncate(cards[i].SetName, 30),
			cards[i].CollectorNumber,
		)
	}
	return tw.finish()
}

func printCollectionPrices(w io.Writer, res *apiclient.CollectionPrices) error {
	tw := newTabWriter(w)
	tw.writef("QTY\tNAME\tSET\tPRICE\tERROR\n")
	for i := range res.Cards {
		cp := &res.Cards[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\n",
			cp.Card.Quantity,
			truncate(cp.Card.Name, 40),
			truncate(cp.Card.SetName, 30),
			formatPrice(cp.Price),
			cp.Error,
		)
	}
	tw.writef("\nPriced:\t%d of %d\n", res.Priced, len(res.Cards))
	tw.writef("Total value:\t$%.2f %s\n", res.TotalValue, res.Currency)
	return tw.finish()
}

func printSearchGroups(w io.Writer, groups []domain.SearchGroup) error {
	tw := newTabWriter(w)
	tw.writef("CARD\tQTY\tSET\tCOLLECTION\tOWNER\n")
	for i := range groups {
		for j := range groups[i].Holdings {
			h := &groups[i].Holdings[j]
			name := ""
			if j == 0 {
				name = truncate(groups[i].CardName, 40)
			}
			tw.writef("%s\t%d\t%s\t%s\t%s\n",
				name,
				h.Quantity,
				truncate(h.SetName, 30),
				truncate(h.Collection, 30),
				h.Owner,
			)
		}
	}
	return tw.finish()
}

func printProfile(w io.Writer, p *domain.Profile) error {
	tw := newTabWriter(w)
	tw.writef("User ID:\t%s\n", p.UserID)
	tw.writef("Username:\t%s\n", p.Username)
	tw.writef("Display name:\t%s\n", p.DisplayName)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
