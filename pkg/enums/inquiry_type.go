package enums

import "fmt"

// InquiryType discriminates the rows stored in the shared inquiries table.
type InquiryType string

const (
	InquiryTypeOrder       InquiryType = "ORDER"
	InquiryTypeCustomOrder InquiryType = "CUSTOM_ORDER"
	InquiryTypeGeneral     InquiryType = "GENERAL"
)

var validInquiryTypes = []InquiryType{
	InquiryTypeOrder,
	InquiryTypeCustomOrder,
	InquiryTypeGeneral,
}

// String implements fmt.Stringer.
func (i InquiryType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InquiryType.
func (i InquiryType) IsValid() bool {
	for _, candidate := range validInquiryTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInquiryType converts raw input into an InquiryType.
func ParseInquiryType(value string) (InquiryType, error) {
	for _, candidate := range validInquiryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inquiry type %q", value)
}
