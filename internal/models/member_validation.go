package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes one rejected field of a member record.
type FieldError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Expected string `json:"expected"`
}

// ValidationError is returned when a member record breaks a model invariant.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message, expected string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message, Expected: expected}}}
}

var memberValidator = newMemberValidator()

func newMemberValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("amount", validateAmount); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(validatePaymentCompanion, Member{})
	return v
}

// validateAmount accepts non-negative decimal strings such as "1500" or "999.50".
func validateAmount(fl validator.FieldLevel) bool {
	_, err := ParseAmount(fl.Field().String())
	return err == nil
}

// validatePaymentCompanion requires the UTR for UPI payments and the receiver
// name for cash payments, and a joining date on every record.
func validatePaymentCompanion(sl validator.StructLevel) {
	m := sl.Current().Interface().(Member)
	switch m.PaymentMode {
	case PaymentModeUPI:
		if strings.TrimSpace(m.UTR) == "" {
			sl.ReportError(m.UTR, "utr", "UTR", "required_for_upi", "")
		}
	case PaymentModeCash:
		if strings.TrimSpace(m.ReceiverName) == "" {
			sl.ReportError(m.ReceiverName, "receiverName", "ReceiverName", "required_for_cash", "")
		}
	}
	if m.DOJ.IsZero() {
		sl.ReportError(m.DOJ, "DOJ", "DOJ", "required", "")
	}
}

// ParseAmount parses a stored amount. Amounts are kept as text and only
// turned into decimals for arithmetic.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must not be negative", raw)
	}
	return d, nil
}

// ValidateMember checks the record invariants. It returns a *ValidationError
// listing every offending field.
func ValidateMember(m *Member) error {
	err := memberValidator.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, describeFieldError(fe))
	}
	return out
}

func describeFieldError(fe validator.FieldError) FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return FieldError{Field: field, Message: fmt.Sprintf("%s is required", field), Expected: "not empty"}
	case "required_for_upi":
		return FieldError{Field: field, Message: "utr is required when paymentMode is upi", Expected: "not empty"}
	case "required_for_cash":
		return FieldError{Field: field, Message: "receiverName is required when paymentMode is cash", Expected: "not empty"}
	case "email":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be a valid email address", field), Expected: "email format"}
	case "oneof":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be one of: %s", field, fe.Param()), Expected: fe.Param()}
	case "min":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %s", field, fe.Param()), Expected: ">= " + fe.Param()}
	case "max":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %s", field, fe.Param()), Expected: "<= " + fe.Param()}
	case "amount":
		return FieldError{Field: field, Message: fmt.Sprintf("%s must be a non-negative number", field), Expected: "decimal string"}
	}
	return FieldError{Field: field, Message: fmt.Sprintf("%s failed the %s check", field, fe.Tag()), Expected: fe.Tag()}
}
