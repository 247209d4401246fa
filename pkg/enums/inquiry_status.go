package enums

import "fmt"

// InquiryStatus is the operational triage state, independent of payment.
type InquiryStatus string

const (
	InquiryStatusOpen     InquiryStatus = "OPEN"
	InquiryStatusResolved InquiryStatus = "RESOLVED"
)

var validInquiryStatuses = []InquiryStatus{
	InquiryStatusOpen,
	InquiryStatusResolved,
}

// String implements fmt.Stringer.
func (i InquiryStatus) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InquiryStatus.
func (i InquiryStatus) IsValid() bool {
	for _, candidate := range validInquiryStatuses {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInquiryStatus converts raw input into an InquiryStatus.
func ParseInquiryStatus(value string) (InquiryStatus, error) {
	for _, candidate := range validInquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inquiry status %q", value)
}
