package checkout

import "github.com/kouchan/hackaton-iti-zup/pkg/money"

// Invoice is the payload posted to the invoicing service. Created by
// BuildInvoice, never mutated afterwards.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Status     string        `json:"status"`
	Total      InvoiceTotal  `json:"total"`
	Items      []InvoiceItem `json:"items"`
}

// InvoiceTotal is the settlement-currency total at a fixed scale of 2.
type InvoiceTotal struct {
	Amount       int64  `json:"amount"`
	Scale        int64  `json:"scale"`
	CurrencyCode string `json:"currencyCode"`
}

// Fixed returns the total as a fixed-point money value.
func (t InvoiceTotal) Fixed() money.FixedPoint {
	return money.FixedPoint{
		Amount:       t.Amount,
		Scale:        t.Scale,
		CurrencyCode: money.Code(t.CurrencyCode),
	}
}

// InvoiceItem mirrors one cart line on the invoice, still in the line's
// original currency.
type InvoiceItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	CurrencyCode string `json:"currencyCode"`
	Price        int64  `json:"price"`
	Scale        int64  `json:"scale"`
}

// BuildInvoice maps a checkout message and its computed total onto the
// invoice payload. Pure one-to-one mapping: each cart line becomes exactly
// one invoice line in cart order, repeated products included. The invoice
// id is the cart id.
func BuildInvoice(msg *CheckoutMessage, total InvoiceTotal) Invoice {
	items := make([]InvoiceItem, 0, len(msg.Cart.Items))
	for _, item := range msg.Cart.Items {
		items = append(items, InvoiceItem{
			ID:           item.Product.ID,
			Name:         item.Product.Name,
			ImageURL:     item.Product.ImageURL,
			CurrencyCode: item.CurrencyCode,
			Price:        item.Price,
			Scale:        item.Scale,
		})
	}

	return Invoice{
		ID:         msg.Cart.ID,
		CustomerID: msg.Cart.CustomerID,
		Status:     msg.Cart.Status,
		Total:      total,
		Items:      items,
	}
}
