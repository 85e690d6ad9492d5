package checkout

import (
	"regexp"
	"strings"
)

// FieldType drives type-specific validation. Only email has its own
// rule; everything else is plain text.
type FieldType string

const (
	FieldTypeText  FieldType = "text"
	FieldTypeEmail FieldType = "email"
)

// CardNumberFieldID is the field id that triggers card-number checking.
const CardNumberFieldID = "card-number"

// User-visible validation messages, rendered inline per field.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email"
	MsgInvalidCard  = "Please enter a valid card number"
)

// Field is one checkout form input as seen by the validator.
type Field struct {
	ID       string
	Value    string
	Required bool
	Type     FieldType
}

// Result reports a single field check. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

// ValidateField applies the field rules in priority order: required,
// then email shape, then card-number checksum. Type and checksum rules
// only apply to non-empty values.
func ValidateField(fieldID, value string, required bool, fieldType FieldType) Result {
	value = strings.TrimSpace(value)

	switch {
	case required && value == "":
		return Result{Message: MsgRequired}
	case fieldType == FieldTypeEmail && value != "" && !ValidEmail(value):
		return Result{Message: MsgInvalidEmail}
	case fieldID == CardNumberFieldID && value != "" && !ValidCardNumber(value):
		return Result{Message: MsgInvalidCard}
	}
	return Result{Valid: true}
}

// FormResult aggregates a whole-form check, one message per failing
// field id.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

// ValidateForm checks every field, never short-circuiting, so all
// failing fields can be reported at once.
func ValidateForm(fields []Field) FormResult {
	result := FormResult{Valid: true, Errors: make(map[string]string)}
	for _, f := range fields {
		r := ValidateField(f.ID, f.Value, f.Required, f.Type)
		if !r.Valid {
			result.Valid = false
			result.Errors[f.ID] = r.Message
		}
	}
	return result
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. This is the
// simplified local@domain.tld shape, not a full RFC 5322 parse.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

var nonDigits = regexp.MustCompile(`\D`)

// ValidCardNumber checks a card number with the Luhn mod-10 checksum.
// Non-digits are stripped first; numbers outside 13-19 digits are
// rejected regardless of checksum. This is a format check, not a payment
// authorization.
func ValidCardNumber(s string) bool {
	cleaned := nonDigits.ReplaceAllString(s, "")
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// FormatCardNumber regroups the digits of a card number into blocks of
// four for display.
func FormatCardNumber(s string) string {
	cleaned := nonDigits.ReplaceAllString(s, "")
	var b strings.Builder
	for i, r := range cleaned {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
