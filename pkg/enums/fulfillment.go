package enums

import "fmt"

// Fulfillment is how a custom order will be handed over.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

var validFulfillments = []Fulfillment{
	FulfillmentPickup,
	FulfillmentDelivery,
}

// String implements fmt.Stringer.
func (f Fulfillment) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Fulfillment.
func (f Fulfillment) IsValid() bool {
	for _, candidate := range validFulfillments {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFulfillment converts raw input into a Fulfillment.
func ParseFulfillment(value string) (Fulfillment, error) {
	for _, candidate := range validFulfillments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fulfillment %q", value)
}
