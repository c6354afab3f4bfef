// Package pricing composes the containers over a concrete domain: a product
// catalog with time-windowed discounts. Missing products and inapplicable
// discounts are absence, not errors, so lookups and rule application chain
// through the optional-value container; running totals thread through the
// state-passing container.
package pricing

import (
	"time"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2/timespan"

	"github.com/k70suK3-k06a7ash1/monadic-go/maybe"
	"github.com/k70suK3-k06a7ash1/monadic-go/state"
)

var hundred = decimal.MustParse("100")

// Product is a catalog entry with an exact decimal price.
type Product struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

// Discount takes Percent off the list price while the promotion window
// contains the purchase time.
type Discount struct {
	Name    string
	Percent decimal.Decimal
	Window  timespan.TimeSpan
}

// DiscountOf builds a discount active between from and to.
func DiscountOf(name string, percent decimal.Decimal, from, to time.Time) Discount {
	return Discount{
		Name:    name,
		Percent: percent,
		Window:  timespan.BetweenTimes(from, to),
	}
}

// ActiveAt reports whether the promotion window contains t.
func (d Discount) ActiveAt(t time.Time) bool {
	return d.Window.Contains(t)
}

// Apply returns the discounted price. Arithmetic failures (overflow on
// pathological percentages) propagate as errors.
func (d Discount) Apply(price decimal.Decimal) (decimal.Decimal, error) {
	fraction, err := d.Percent.Quo(hundred)
	if err != nil {
		return decimal.Decimal{}, err
	}
	off, err := price.Mul(fraction)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return price.Sub(off)
}

// Catalog is an immutable SKU-indexed product set.
type Catalog struct {
	bySKU map[string]Product
}

// NewCatalog indexes the given products; the last product wins on
// duplicate SKUs.
func NewCatalog(products ...Product) Catalog {
	bySKU := make(map[string]Product, len(products))
	for _, p := range products {
		bySKU[p.SKU] = p
	}
	return Catalog{bySKU: bySKU}
}

// Lookup resolves a SKU; an unknown SKU is None.
func (c Catalog) Lookup(sku string) maybe.Maybe[Product] {
	p, ok := c.bySKU[sku]
	return maybe.FromOk(p, ok)
}

// BestDiscountAt picks the highest-percentage discount active at t, or None
// when nothing applies.
func BestDiscountAt(discounts []Discount, at time.Time) maybe.Maybe[Discount] {
	best := maybe.NoneOf[Discount]()
	for _, d := range discounts {
		if !d.ActiveAt(at) {
			continue
		}
		best = maybe.Fold(best,
			func(cur Discount) maybe.Maybe[Discount] {
				if d.Percent.Cmp(cur.Percent) > 0 {
					return maybe.JustOf(d)
				}
				return maybe.JustOf(cur)
			},
			func() maybe.Maybe[Discount] { return maybe.JustOf(d) },
		)
	}
	return best
}

// PriceAt is the effective unit price at t: the best active discount
// applied to the list price, or the list price when none applies.
func PriceAt(p Product, discounts []Discount, at time.Time) (decimal.Decimal, error) {
	best, ok := BestDiscountAt(discounts, at).Get()
	if !ok {
		return p.Price, nil
	}
	return best.Apply(p.Price)
}

// Checkout resolves every SKU and sums the effective prices at t. The chain
// short-circuits: one unknown SKU (or failed arithmetic) makes the whole
// checkout None, and no later SKU is priced.
func Checkout(c Catalog, skus []string, discounts []Discount, at time.Time) maybe.Maybe[decimal.Decimal] {
	total := maybe.JustOf(decimal.Decimal{})
	for _, sku := range skus {
		total = maybe.Bind(total, func(sum decimal.Decimal) maybe.Maybe[decimal.Decimal] {
			return maybe.Bind(c.Lookup(sku), func(p Product) maybe.Maybe[decimal.Decimal] {
				price, err := PriceAt(p, discounts, at)
				if err != nil {
					return maybe.NoneOf[decimal.Decimal]()
				}
				next, err := sum.Add(price)
				return maybe.FromOk(next, err == nil)
			})
		})
	}
	return total
}

// ScanTotal threads a running total through the state container, one step
// per price, and yields the number of prices summed. Prices that would
// overflow the total are skipped rather than faulted.
func ScanTotal(prices []decimal.Decimal) state.State[decimal.Decimal, int] {
	program := state.Pure[decimal.Decimal](0)
	for _, price := range prices {
		program = state.Bind(program, func(count int) state.State[decimal.Decimal, int] {
			return state.Of(func(total decimal.Decimal) (decimal.Decimal, int) {
				next, err := total.Add(price)
				if err != nil {
					return total, count
				}
				return next, count + 1
			})
		})
	}
	return program
}
