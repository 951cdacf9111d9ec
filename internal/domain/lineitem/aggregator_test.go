package lineitem

import (
	"strings"
	"testing"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireInvariant(t *testing.T, items []entities.LineItem) {
	t.Helper()
	for i, it := range items {
		require.GreaterOrEqual(t, it.Quantity, 1, "item %d quantity", i)
		require.False(t, it.SalePrice.IsNegative(), "item %d price", i)
		want := it.SalePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		require.True(t, it.TotalValue.Equal(want), "item %d total %s != %s", i, it.TotalValue, want)
	}
}

func sameItems(a, b []entities.LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Quantity != b[i].Quantity || !a[i].SalePrice.Equal(b[i].SalePrice) || !a[i].TotalValue.Equal(b[i].TotalValue) ||
			a[i].Name != b[i].Name || a[i].ProductID != b[i].ProductID {
			return false
		}
	}
	return true
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"10":       "10",
		" 12.5 ":   "12.5",
		"R$ 12,50": "12.5",
		"":         "0",
		"abc":      "0",
		"NaN":      "0",
		"Infinity": "0",
		"-3":       "0",
		"1e2":      "100",
	}
	for in, want := range cases {
		assert.True(t, ParseAmount(in).Equal(dec(want)), "ParseAmount(%q) = %s", in, ParseAmount(in))
	}
}

func TestParseNumber_BoundsExponentAndLength(t *testing.T) {
	for _, in := range []string{"1e20000000", "1e999999999", "1e-999999999", "1e13", strings.Repeat("1", 41)} {
		start := time.Now()
		d, ok := ParseNumber(in)
		assert.False(t, ok, "ParseNumber(%q) accepted", in)
		assert.True(t, d.IsZero())
		assert.Less(t, time.Since(start).Seconds(), 1.0, "ParseNumber(%q) too slow", in)
	}

	d, ok := ParseNumber(" 1e12 ")
	require.True(t, ok)
	assert.True(t, d.Equal(dec("1000000000000")))

	assert.True(t, ParseAmount("1e20000000").IsZero())
	assert.True(t, parseMargin("-1e20000000").IsZero())
	assert.True(t, parseMargin("-4.5").Equal(dec("-4.5")))

	items := FromRaw([]RawItem{{Quantity: "1e999999999", SalePrice: "1e999999999", CostUnitPrice: "1e20000000"}})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, items[0].TotalValue.IsZero())
	assert.Less(t, len(items[0].CostUnitPrice.String()), maxNumberLen)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		"3":     3,
		" 2 ":   2,
		"2.7":   2,
		"0":     1,
		"-5":    1,
		"":      1,
		"x":     1,
		"0.5":   1,
		"1e12":  maxQuantity,
		"12abc": 1,

		"1e19":                 maxQuantity,
		"9223372036854775808":  maxQuantity,
		"18446744073709551617": maxQuantity,
		"1000000.9":            maxQuantity,
		"1e20000000":           1,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseQuantity(in), "ParseQuantity(%q)", in)
	}
}

func TestFromRaw(t *testing.T) {
	items := FromRaw([]RawItem{
		{Name: "Filtro de óleo", Quantity: "2", SalePrice: "35.90", CostUnitPrice: "20"},
		{Name: "Mão de obra", Quantity: "", SalePrice: "abc"},
		{Name: "Pastilha", Quantity: "-1", SalePrice: "R$ 99,00", GrossProfitMargin: "-4.5"},
	})
	require.Len(t, items, 3)
	requireInvariant(t, items)

	assert.True(t, items[0].TotalValue.Equal(dec("71.8")))
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, items[1].TotalValue.IsZero())
	assert.True(t, items[2].TotalValue.Equal(dec("99")))
	assert.True(t, items[2].GrossProfitMargin.Equal(dec("-4.5")))
}

func TestNormalize_TotalIsPriceTimesQuantity(t *testing.T) {
	for _, q := range []int{1, 2, 3, 10, 999} {
		for _, p := range []string{"0", "0.01", "12.5", "1999.99"} {
			out, _ := Normalize([]entities.LineItem{{SalePrice: dec(p), Quantity: q}})
			want := dec(p).Mul(decimal.NewFromInt(int64(q)))
			assert.True(t, out[0].TotalValue.Equal(want), "price %s qty %d", p, q)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := []entities.LineItem{
		{Name: "a", SalePrice: dec("10"), Quantity: 0},
		{Name: "b", SalePrice: dec("-2"), Quantity: 3, TotalValue: dec("7")},
		{Name: "c", SalePrice: dec("4.25"), Quantity: 2, TotalValue: dec("8.5")},
	}
	once, changed := Normalize(in)
	require.True(t, changed)
	requireInvariant(t, once)

	twice, changedAgain := Normalize(once)
	assert.False(t, changedAgain)
	assert.True(t, sameItems(once, twice))
}

func TestNormalize_ShortCircuitsWhenAlreadyNormalized(t *testing.T) {
	in := []entities.LineItem{{Name: "a", SalePrice: dec("10.50"), Quantity: 2, TotalValue: dec("21")}}
	out, changed := Normalize(in)
	assert.False(t, changed)
	assert.Same(t, &in[0], &out[0])
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []entities.LineItem{{SalePrice: dec("5"), Quantity: 0}}
	_, changed := Normalize(in)
	require.True(t, changed)
	assert.Equal(t, 0, in[0].Quantity)
}

func TestAddBlankItem(t *testing.T) {
	items := AddBlankItem(nil)
	require.Len(t, items, 1)
	requireInvariant(t, items)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Empty(t, items[0].Name)

	items = AddBlankItem(items)
	assert.Len(t, items, 2)
}

func TestRemoveItem(t *testing.T) {
	items := FromRaw([]RawItem{{Name: "a", Quantity: "1", SalePrice: "1"}, {Name: "b", Quantity: "1", SalePrice: "2"}})

	out, err := RemoveItem(items, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].Name)
	assert.Len(t, items, 2)

	for _, idx := range []int{-1, 2, 10} {
		_, err := RemoveItem(items, idx)
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange, "index %d", idx)
	}
	_, err = RemoveItem(nil, 0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestBindCatalogProduct(t *testing.T) {
	items := AddBlankItem(FromRaw([]RawItem{{Name: "x", Quantity: "4", SalePrice: "3"}}))
	product := entities.CatalogProduct{
		ID: "p-1", Code: "FLT-01", Name: "Filtro", SalePrice: dec("45.5"), CostUnitPrice: dec("30"),
		GrossProfitMargin: dec("51.6"), ProviderIDs: []string{"prov-1"},
	}

	out, err := BindCatalogProduct(items, 1, product)
	require.NoError(t, err)
	requireInvariant(t, out)
	bound := out[1]
	assert.Equal(t, "p-1", bound.ProductID)
	assert.Equal(t, "FLT-01", bound.Code)
	assert.Equal(t, 1, bound.Quantity)
	assert.True(t, bound.TotalValue.Equal(dec("45.5")))
	assert.Equal(t, []string{"prov-1"}, bound.ProviderIDs)

	product.ProviderIDs[0] = "changed"
	assert.Equal(t, "prov-1", out[1].ProviderIDs[0])

	_, err = BindCatalogProduct(items, 2, product)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestSetQuantity_NeverBelowOne(t *testing.T) {
	items := FromRaw([]RawItem{{Name: "a", Quantity: "2", SalePrice: "7.5"}})
	for _, q := range []int{0, -1, -100} {
		out, err := SetQuantity(items, 0, q)
		require.NoError(t, err)
		assert.Equal(t, 1, out[0].Quantity)
		assert.True(t, out[0].TotalValue.Equal(dec("7.5")))
	}

	out, err := SetQuantity(items, 0, 4)
	require.NoError(t, err)
	assert.True(t, out[0].TotalValue.Equal(dec("30")))
	assert.Equal(t, 2, items[0].Quantity)

	_, err = SetQuantity(items, 1, 4)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestTotals(t *testing.T) {
	items := FromRaw([]RawItem{
		{Quantity: "2", SalePrice: "10", CostUnitPrice: "6"},
		{Quantity: "1", SalePrice: "5.5", CostUnitPrice: "1"},
	})
	assert.True(t, Total(items).Equal(dec("25.5")))
	assert.True(t, TotalCost(items).Equal(dec("13")))
	assert.True(t, Total(nil).IsZero())
}
