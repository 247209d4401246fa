package mailer

import (
	"fmt"
	"html"
	"strings"

	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
)

// OrderConfirmationSubject is the subject line for paid-order emails.
const OrderConfirmationSubject = "Order confirmed - Maya's Cake Cafe"

// RenderOrderConfirmation renders the HTML body sent after a checkout
// session is paid. Item names come from the stored snapshot, never from
// the live catalog.
func RenderOrderConfirmation(name, inquiryID string, amountCents int, items dbtypes.LineItems) string {
	var rows strings.Builder
	for _, item := range items {
		lineTotal := item.UnitPriceCents * item.Qty
		rows.WriteString(fmt.Sprintf(`
        <tr>
          <td style="padding:8px 0;">%s <span style="color:#666;">&times; %d</span></td>
          <td style="padding:8px 0; text-align:right;">%s</td>
        </tr>`, html.EscapeString(item.Name), item.Qty, FormatUSD(lineTotal)))
	}
	if rows.Len() == 0 {
		rows.WriteString(`<tr><td style="padding:8px 0;">Order items</td><td></td></tr>`)
	}

	return fmt.Sprintf(`
    <div style="font-family: ui-sans-serif, system-ui; line-height:1.4;">
      <h2 style="margin:0 0 8px;">Order confirmed</h2>
      <p style="margin:0 0 16px;">Hi %s, we received your payment and will start preparing your order.</p>

      <div style="border:1px solid #eee; border-radius:12px; padding:16px;">
        <div style="color:#666; font-size:12px;">Order ID</div>
        <div style="font-weight:600; margin-bottom:12px;">%s</div>

        <table style="width:100%%; border-collapse:collapse;">
          %s
          <tr><td colspan="2"><hr style="border:none;border-top:1px solid #eee;" /></td></tr>
          <tr>
            <td style="padding:8px 0; font-weight:600;">Total</td>
            <td style="padding:8px 0; text-align:right; font-weight:600;">%s</td>
          </tr>
        </table>
      </div>

      <p style="margin:16px 0 0; color:#666; font-size:13px;">
        Reply to this email if you need to change anything.
      </p>
    </div>`, html.EscapeString(name), html.EscapeString(inquiryID), rows.String(), FormatUSD(amountCents))
}

// FormatUSD renders cents as a dollar amount, e.g. 123456 -> "$1,234.56".
func FormatUSD(cents int) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100

	whole := fmt.Sprintf("%d", dollars)
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), remainder)
}
