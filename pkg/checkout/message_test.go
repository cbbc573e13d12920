package checkout

import (
	"testing"

	"github.com/kouchan/hackaton-iti-zup/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessage = `{
	"cart": {
		"id": "cart-42",
		"customerId": "customer-7",
		"status": "CHECKOUT",
		"items": [
			{
				"price": 1000,
				"scale": 2,
				"currencyCode": "USD",
				"product": {"id": "sku-1", "name": "Widget", "imageUrl": "https://cdn.example.com/widget.png"}
			},
			{
				"price": 500,
				"scale": 2,
				"currencyCode": "EUR",
				"product": {"id": "sku-2", "name": "Gadget", "imageUrl": "https://cdn.example.com/gadget.png"}
			}
		]
	},
	"invoice": {"currencyCode": "BRL", "x-team-control": "team-token-123"}
}`

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage([]byte(sampleMessage))
	require.NoError(t, err)

	assert.Equal(t, "cart-42", msg.Cart.ID)
	assert.Equal(t, "customer-7", msg.Cart.CustomerID)
	assert.Equal(t, "CHECKOUT", msg.Cart.Status)
	require.Len(t, msg.Cart.Items, 2)
	assert.Equal(t, int64(1000), msg.Cart.Items[0].Price)
	assert.Equal(t, int64(2), msg.Cart.Items[0].Scale)
	assert.Equal(t, "USD", msg.Cart.Items[0].CurrencyCode)
	assert.Equal(t, "sku-1", msg.Cart.Items[0].Product.ID)
	assert.Equal(t, "Widget", msg.Cart.Items[0].Product.Name)
	assert.Equal(t, "BRL", msg.Invoice.CurrencyCode)
	assert.Equal(t, "team-token-123", msg.Invoice.XTeamControl)
}

func TestParseMessage_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"truncated", `{"cart": {"id": "cart-1"`},
		{"wrong types", `{"cart": {"items": [{"price": "a lot"}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseMessage([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, ErrDeserializationFailed)
		})
	}
}

func TestSettlementCurrency_Normalized(t *testing.T) {
	msg := &CheckoutMessage{Invoice: InvoiceDirective{CurrencyCode: "brl"}}
	assert.Equal(t, money.BRL, msg.SettlementCurrency())
}
