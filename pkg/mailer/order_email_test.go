package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
)

func TestFormatUSD(t *testing.T) {
	require.Equal(t, "$0.00", FormatUSD(0))
	require.Equal(t, "$0.05", FormatUSD(5))
	require.Equal(t, "$12.50", FormatUSD(1250))
	require.Equal(t, "$1,234.56", FormatUSD(123456))
	require.Equal(t, "$1,000,000.00", FormatUSD(100000000))
	require.Equal(t, "-$3.25", FormatUSD(-325))
}

func TestRenderOrderConfirmation(t *testing.T) {
	items := dbtypes.LineItems{
		{ProductID: "p1", Name: "Chocolate Cake", UnitPriceCents: 4500, Qty: 1},
		{ProductID: "p2", Name: "Cupcake Box", UnitPriceCents: 1800, Qty: 2},
	}
	body := RenderOrderConfirmation("Ana", "inq_123", 8100, items)

	require.Contains(t, body, "Hi Ana")
	require.Contains(t, body, "inq_123")
	require.Contains(t, body, "Chocolate Cake")
	require.Contains(t, body, "$45.00")
	require.Contains(t, body, "$36.00")
	require.Contains(t, body, "$81.00")
}

func TestRenderOrderConfirmationEscapesHTML(t *testing.T) {
	items := dbtypes.LineItems{{ProductID: "p1", Name: "<script>alert(1)</script>", UnitPriceCents: 100, Qty: 1}}
	body := RenderOrderConfirmation("<b>Ana</b>", "inq_1", 100, items)
	require.NotContains(t, body, "<script>")
	require.NotContains(t, body, "<b>Ana</b>")
}

func TestRenderOrderConfirmationEmptyItems(t *testing.T) {
	body := RenderOrderConfirmation("Ana", "inq_1", 0, nil)
	require.Contains(t, body, "Order items")
	require.True(t, strings.Contains(body, "$0.00"))
}
