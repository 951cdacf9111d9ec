// Package lineitem keeps the derived totals of an order's line items
// consistent with their quantity and sale price.
//
// Every function returns a new slice and leaves its input untouched. After any
// of them, for every item: Quantity >= 1, SalePrice >= 0 and
// TotalValue == SalePrice * Quantity.
package lineitem

import (
	"fmt"
	"strings"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RawItem is line-item input as typed in the order form. Numeric fields are
// kept as text so malformed values can be coerced instead of rejected.
type RawItem struct {
	ProductID         string
	Code              string
	Name              string
	Quantity          string
	SalePrice         string
	CostUnitPrice     string
	GrossProfitMargin string
	ProviderIDs       []string
	Observations      string
}

// ParseAmount coerces text into a non-negative amount. Anything that does not
// parse, including NaN and infinities, becomes zero. Accepts "R$ 12,50".
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, ok := ParseNumber(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

const (
	maxQuantity = 1_000_000

	// Bounds on numeric text. decimal keeps the exponent apart from the
	// digits, so "1e20000000" parses cheaply but expands to millions of
	// digits on IntPart or String.
	maxNumberLen   = 40
	maxNumberScale = 12
)

// ParseNumber parses s as a decimal, refusing text longer than maxNumberLen or
// an exponent beyond ±maxNumberScale.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxNumberLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxNumberScale || exp < -maxNumberScale {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity coerces text into a positive integer quantity, defaulting to 1
// and capped at maxQuantity. Fractions are truncated.
func ParseQuantity(s string) int {
	d, ok := ParseNumber(s)
	if !ok {
		return 1
	}
	if d.GreaterThan(decimal.NewFromInt(maxQuantity)) {
		return maxQuantity
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return 1
	}
	return int(d.IntPart())
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}

// FromRaw coerces form input into normalized line items.
func FromRaw(raw []RawItem) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, entities.LineItem{
			ProductID:         strings.TrimSpace(r.ProductID),
			Code:              strings.TrimSpace(r.Code),
			Name:              strings.TrimSpace(r.Name),
			Quantity:          ParseQuantity(r.Quantity),
			SalePrice:         ParseAmount(r.SalePrice),
			CostUnitPrice:     ParseAmount(r.CostUnitPrice),
			GrossProfitMargin: parseMargin(r.GrossProfitMargin),
			ProviderIDs:       copyStrings(r.ProviderIDs),
			Observations:      r.Observations,
		})
	}
	out, _ := Normalize(items)
	return out
}

// margins may legitimately be negative
func parseMargin(s string) decimal.Decimal {
	d, _ := ParseNumber(s)
	return d
}

// Normalize clamps quantity and price and recomputes every TotalValue.
// When nothing changes it returns the input slice itself and changed=false so
// reactive callers can skip persisting or re-rendering.
func Normalize(items []entities.LineItem) (out []entities.LineItem, changed bool) {
	for i := range items {
		if !isNormalized(items[i]) {
			changed = true
			break
		}
	}
	if !changed {
		return items, false
	}

	out = make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = normalizeItem(it)
	}
	return out, true
}

func normalizeItem(it entities.LineItem) entities.LineItem {
	it = clone(it)
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	if it.SalePrice.IsNegative() {
		it.SalePrice = decimal.Zero
	}
	it.TotalValue = lineTotal(it.SalePrice, it.Quantity)
	return it
}

func isNormalized(it entities.LineItem) bool {
	return it.Quantity >= 1 &&
		!it.SalePrice.IsNegative() &&
		it.TotalValue.Equal(lineTotal(it.SalePrice, it.Quantity))
}

func lineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// AddBlankItem appends an empty entry (quantity 1, price 0) for the user to
// fill before a catalog product is chosen.
func AddBlankItem(items []entities.LineItem) []entities.LineItem {
	out := cloneAll(items, len(items)+1)
	return append(out, entities.LineItem{Quantity: 1, SalePrice: decimal.Zero, TotalValue: decimal.Zero})
}

func RemoveItem(items []entities.LineItem, index int) ([]entities.LineItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}
	out := make([]entities.LineItem, 0, len(items)-1)
	for i, it := range items {
		if i != index {
			out = append(out, clone(it))
		}
	}
	return out, nil
}

// BindCatalogProduct replaces the item at index with the catalog product's
// values, quantity 1.
func BindCatalogProduct(items []entities.LineItem, index int, product entities.CatalogProduct) ([]entities.LineItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}
	out := cloneAll(items, len(items))
	out[index] = normalizeItem(entities.LineItem{
		ProductID:         product.ID,
		Code:              product.Code,
		Name:              product.Name,
		Quantity:          1,
		SalePrice:         product.SalePrice,
		CostUnitPrice:     product.CostUnitPrice,
		GrossProfitMargin: product.GrossProfitMargin,
		ProviderIDs:       product.ProviderIDs,
		Observations:      product.Observations,
	})
	return out, nil
}

// SetQuantity clamps quantity to at least 1 and recomputes the item total.
func SetQuantity(items []entities.LineItem, index int, quantity int) ([]entities.LineItem, error) {
	if err := checkIndex(items, index); err != nil {
		return nil, err
	}
	out := cloneAll(items, len(items))
	it := out[index]
	it.Quantity = clampQuantity(quantity)
	out[index] = normalizeItem(it)
	return out, nil
}

// Total is the order's TotalValueGeneral.
func Total(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalValue)
	}
	return sum
}

// TotalCost sums CostUnitPrice * Quantity; informational only.
func TotalCost(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineTotal(it.CostUnitPrice, it.Quantity))
	}
	return sum
}

func checkIndex(items []entities.LineItem, index int) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d (len %d)", domain.ErrIndexOutOfRange, index, len(items))
	}
	return nil
}

func cloneAll(items []entities.LineItem, capacity int) []entities.LineItem {
	out := make([]entities.LineItem, len(items), capacity)
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

func clone(it entities.LineItem) entities.LineItem {
	it.ProviderIDs = copyStrings(it.ProviderIDs)
	return it
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
