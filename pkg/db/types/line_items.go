package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LineItem is the frozen copy of a product at order-creation time. Later
// catalog edits must never change what the customer was charged for.
type LineItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int    `json:"unitPriceCents"`
	Qty            int    `json:"qty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// LineItems stores the order snapshot as a jsonb column.
type LineItems []LineItem

// TotalCents sums unit price times quantity over the snapshot.
func (l LineItems) TotalCents() int {
	total := 0
	for _, item := range l {
		total += item.UnitPriceCents * item.Qty
	}
	return total
}

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("line items: marshal: %w", err)
	}
	return string(encoded), nil
}

func (l *LineItems) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("line items: unsupported Scan type %T", src)
	}
}
