package sms

import "regexp"

// phonePattern is intentionally permissive: an optional leading '+' followed by
// 7 to 15 digits, spaces, hyphens or parentheses.
var phonePattern = regexp.MustCompile(`^\+?[0-9 \-()]{7,15}$`)

// ValidatePhoneNumber reports whether s is an acceptable recipient.
func ValidatePhoneNumber(s string) error {
	if !phonePattern.MatchString(s) {
		return &ValidationError{Msg: "invalid phone number format: " + s}
	}
	return nil
}

// ValidateContent checks the sender and text of a message.
func ValidateContent(from, text string) error {
	if from == "" {
		return &ValidationError{Msg: "sender required"}
	}
	if text == "" {
		return &ValidationError{Msg: "message text required"}
	}
	return nil
}

// validate checks the inputs in a fixed order so the first violation
// always produces the same message.
func validate(recipients []string, from, text string) error {
	if len(recipients) == 0 {
		return &ValidationError{Msg: "recipients required"}
	}
	if err := ValidateContent(from, text); err != nil {
		return err
	}
	for _, r := range recipients {
		if err := ValidatePhoneNumber(r); err != nil {
			return err
		}
	}
	return nil
}
