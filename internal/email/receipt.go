package email

import (
	"fmt"
	"html"
	"strings"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/money"
)

// ReceiptHTML renders the order confirmation body: line-item table plus
// subtotal/GST/total. Product names are user-facing catalog data but escaped
// anyway since the cart snapshot travels through the API.
func ReceiptHTML(orderID string, items []models.CartItem, amounts money.Amounts, recipient string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Order Confirmation - %s</h2>", html.EscapeString(orderID))
	b.WriteString("<p>Thank you for your purchase from <strong>Uvicorn</strong>.</p>")
	if recipient != "" {
		fmt.Fprintf(&b, "<p><em>Receipt recipient: %s</em></p>", html.EscapeString(recipient))
	}

	b.WriteString(`<table style="width:100%;border-collapse:collapse;margin-top:12px" border="1" cellpadding="8">`)
	b.WriteString(`<thead><tr><th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th><th align="right">Line Total</th></tr></thead><tbody>`)
	for _, it := range items {
		fmt.Fprintf(&b,
			`<tr><td>%s</td><td align="right">%d</td><td align="right">%s</td><td align="right">%s</td></tr>`,
			html.EscapeString(it.Product.Name),
			it.Quantity,
			money.FormatINR(it.Product.Price),
			money.FormatINR(it.Product.Price*int64(it.Quantity)),
		)
	}
	b.WriteString("</tbody></table>")

	fmt.Fprintf(&b,
		`<p style="margin-top:12px">Subtotal: <strong>%s</strong><br/>GST (18%%): <strong>%s</strong><br/>Total: <strong>%s</strong></p>`,
		money.FormatINR(amounts.Subtotal),
		money.FormatINR(amounts.Tax),
		money.FormatINR(amounts.Total),
	)
	return b.String()
}

// AdminReceiptHTML prefixes the buyer receipt with the admin banner.
func AdminReceiptHTML(receipt, buyerEmail string) string {
	banner := fmt.Sprintf(
		`<p style="background:#fff3cd;padding:12px;border-radius:4px;color:#856404;margin-bottom:16px"><strong>Admin Notification</strong><br/>This is an admin copy of the order receipt. Customer email: %s</p>`,
		html.EscapeString(buyerEmail),
	)
	return banner + receipt
}
