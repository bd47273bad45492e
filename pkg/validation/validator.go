package validation

import (
	"fmt"
	"net/mail"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ValidateStringLength check if the string length is between minLength and maxLength
func ValidateStringLength(value string, minLength, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("string length is invalid, must be between %d and %d", minLength, maxLength)
	}

	return nil
}

// ValidateEmail check if the email is valid.
// It must be between 5 and 250 characters long
// and contain a valid email address.
func ValidateEmail(value string) error {
	if err := ValidateStringLength(value, 5, 250); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("email is invalid")
	}

	return nil
}

// ValidateID checks that value is a record key, a 24 character hex object id
func ValidateID(value string) error {
	if _, err := bson.ObjectIDFromHex(value); err != nil {
		return fmt.Errorf("id %q is invalid", value)
	}
	return nil
}

// ValidateOneOf checks that value is one of allowed
func ValidateOneOf[T ~string](value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("value %q is invalid, must be one of %v", value, allowed)
}
