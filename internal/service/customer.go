package service

import (
	"regexp"
	"strings"

	"github.com/Beka01247/cafe/internal/domain"
)

var (
	customerNameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,}$`)
	customerPhoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidCustomerName accepts letters and spaces, at least two characters
// after trimming.
func ValidCustomerName(name string) bool {
	return customerNameRe.MatchString(strings.TrimSpace(name))
}

// ValidPhone accepts exactly ten ASCII digits.
func ValidPhone(phone string) bool {
	return customerPhoneRe.MatchString(strings.TrimSpace(phone))
}

// NormalizeCustomer trims and validates the identity used at checkout.
func NormalizeCustomer(name, phone string) (string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if !ValidCustomerName(name) {
		return "", "", domain.NewValidationError("customer_name", "please enter a valid name (letters and spaces only, at least 2 characters)")
	}
	if !ValidPhone(phone) {
		return "", "", domain.NewValidationError("customer_phone", "please enter a valid 10-digit phone number")
	}
	return name, phone, nil
}
