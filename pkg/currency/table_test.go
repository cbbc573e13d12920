package currency

import (
	"testing"

	"github.com/kouchan/hackaton-iti-zup/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() []Rate {
	return []Rate{
		{Name: "USD_TO_BRL", Value: 500, Scale: 2}, // 5.00
		{Name: "USD_TO_EUR", Value: 90, Scale: 2},  // 0.90
	}
}

func TestBuild_SelfPairsAreExactlyOne(t *testing.T) {
	table, err := Build(testRates())
	require.NoError(t, err)

	for _, code := range Supported {
		factor, err := table.Factor(Pair{From: code, To: code})
		require.NoError(t, err)
		assert.Equal(t, 1.0, factor, "self pair %s", code)
	}
}

func TestBuild_RoundTripIsInverse(t *testing.T) {
	table, err := Build(testRates())
	require.NoError(t, err)

	for _, from := range Supported {
		for _, to := range Supported {
			forward, err := table.Factor(Pair{From: from, To: to})
			require.NoError(t, err)
			backward, err := table.Factor(Pair{From: to, To: from})
			require.NoError(t, err)
			assert.InDelta(t, 1.0, forward*backward, 1e-9, "%s-%s round trip", from, to)
		}
	}
}

func TestBuild_CrossRateGoesThroughPivot(t *testing.T) {
	table, err := Build(testRates())
	require.NoError(t, err)

	// EUR→BRL = EUR→USD × USD→BRL = (1/0.90) × 5.00
	factor, err := table.Factor(Pair{From: money.EUR, To: money.BRL})
	require.NoError(t, err)
	assert.InDelta(t, 5.0/0.90, factor, 1e-9)

	factor, err = table.Factor(Pair{From: money.BRL, To: money.EUR})
	require.NoError(t, err)
	assert.InDelta(t, 0.90/5.0, factor, 1e-9)
}

func TestBuild_QuoteNamesAreCaseInsensitive(t *testing.T) {
	table, err := Build([]Rate{
		{Name: "usd_to_brl", Value: 500, Scale: 2},
		{Name: "Usd_To_Eur", Value: 90, Scale: 2},
	})
	require.NoError(t, err)

	factor, err := table.Factor(Pair{From: money.USD, To: money.BRL})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, factor, 1e-9)
}

func TestBuild_MissingQuoteFailsClosed(t *testing.T) {
	_, err := Build([]Rate{
		{Name: "USD_TO_BRL", Value: 500, Scale: 2},
		// USD_TO_EUR missing
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCurrencyPair)
}

func TestBuild_InvalidRateFails(t *testing.T) {
	tests := []struct {
		name  string
		rates []Rate
	}{
		{"zero value", []Rate{
			{Name: "USD_TO_BRL", Value: 0, Scale: 2},
			{Name: "USD_TO_EUR", Value: 90, Scale: 2},
		}},
		{"negative value", []Rate{
			{Name: "USD_TO_BRL", Value: -500, Scale: 2},
			{Name: "USD_TO_EUR", Value: 90, Scale: 2},
		}},
		{"negative scale", []Rate{
			{Name: "USD_TO_BRL", Value: 500, Scale: -1},
			{Name: "USD_TO_EUR", Value: 90, Scale: 2},
		}},
		{"oversized scale", []Rate{
			{Name: "USD_TO_BRL", Value: 500, Scale: 400},
			{Name: "USD_TO_EUR", Value: 90, Scale: 2},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.rates)
			assert.ErrorIs(t, err, ErrInvalidRate)
		})
	}
}

func TestTable_UnknownPairFailsClosed(t *testing.T) {
	table, err := Build(testRates())
	require.NoError(t, err)

	_, err = table.Factor(PairOf("GBP", "BRL"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCurrencyPair)
}

func TestPairOf_NormalizesCase(t *testing.T) {
	p := PairOf("usd", "brl")
	assert.Equal(t, money.USD, p.From)
	assert.Equal(t, money.BRL, p.To)
	assert.Equal(t, "USD-BRL", p.String())
}

func TestRate_Factor(t *testing.T) {
	assert.InDelta(t, 5.0, Rate{Name: "USD_TO_BRL", Value: 500, Scale: 2}.Factor(), 1e-12)
	assert.InDelta(t, 0.9, Rate{Name: "USD_TO_EUR", Value: 90, Scale: 2}.Factor(), 1e-12)
	assert.InDelta(t, 5.0, Rate{Name: "USD_TO_BRL", Value: 5, Scale: 0}.Factor(), 1e-12)
}
