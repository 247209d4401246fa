package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomOrderDetails holds the cake-specific fields of a CUSTOM_ORDER inquiry.
// Kept as a typed jsonb payload so the inquiries table stays stable.
type CustomOrderDetails struct {
	Occasion          string  `json:"occasion"`
	Fulfillment       string  `json:"fulfillment,omitempty"`
	DateTimeLocal     string  `json:"dateTimeLocal"`
	SizeServings      string  `json:"sizeServings"`
	Flavor            string  `json:"flavor"`
	DesignTheme       string  `json:"designTheme,omitempty"`
	DesignPhotoURL    string  `json:"designPhotoUrl,omitempty"`
	CakeName          string  `json:"cakeName,omitempty"`
	CakeMessage       string  `json:"cakeMessage,omitempty"`
	DecorationDetails string  `json:"decorationDetails,omitempty"`
	BudgetCents       *int64  `json:"budgetCents,omitempty"`
	Allergies         string  `json:"allergies,omitempty"`
}

func (d CustomOrderDetails) Value() (driver.Value, error) {
	encoded, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("custom order details: marshal: %w", err)
	}
	return string(encoded), nil
}

func (d *CustomOrderDetails) Scan(src any) error {
	if src == nil {
		*d = CustomOrderDetails{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("custom order details: unsupported Scan type %T", src)
	}
}
