package ledger

import (
	"math"

	"github.com/Veraticus/unibudget/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryShare is one slice of the category breakdown.
type CategoryShare struct {
	Category model.Category
	Icon     string
	Amount   float64
	Share    float64 // fraction of the grand total, 0 when nothing was spent
	Percent  int     // Share rounded to a whole percent, for legends
}

// CategoryBreakdown totals spending per category in display order. Every
// category appears, including those with nothing spent.
func CategoryBreakdown(expenses []model.Expense) []CategoryShare {
	totals := make(map[model.Category]decimal.Decimal, len(model.Categories()))
	grand := decimal.Zero
	for _, e := range expenses {
		if !e.Category.Valid() {
			continue
		}
		amt := decimal.NewFromFloat(e.Amount)
		totals[e.Category] = totals[e.Category].Add(amt)
		grand = grand.Add(amt)
	}

	shares := make([]CategoryShare, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		amount := totals[c].InexactFloat64()
		share := 0.0
		if grand.IsPositive() {
			share = totals[c].Div(grand).InexactFloat64()
		}
		shares = append(shares, CategoryShare{
			Category: c,
			Icon:     c.Icon(),
			Amount:   amount,
			Share:    share,
			Percent:  int(math.Round(share * 100)),
		})
	}

	return shares
}

// NonZero filters out categories with nothing spent.
func NonZero(shares []CategoryShare) []CategoryShare {
	out := make([]CategoryShare, 0, len(shares))
	for _, s := range shares {
		if s.Amount > 0 {
			out = append(out, s)
		}
	}
	return out
}
