package order

import (
	"math"
	"strconv"
	"strings"

	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// MaxPaymentReasonLength bounds the free-text reason of a payment request.
const MaxPaymentReasonLength = 500

// ErrPaymentIsNotConstructed is returned when validating a zero-value Payment.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
	"payment must be created via NewPayment constructor")

// Payment is the amount/reason pair a technician attaches when requesting the
// customer's decision (off-site estimate) or payment (on-site bill). It is
// stored verbatim on the order and retained after consumption for audit.
type Payment struct {
	amount float64
	reason string
	guard  guard.ConstructorGuard
}

// NewPayment creates a Payment. The amount must be positive with at most two
// decimal places; the reason must be non-empty and within
// MaxPaymentReasonLength characters.
func NewPayment(amount float64, reason string) (Payment, error) {
	if amount <= 0 {
		return Payment{}, errs.NewValueIsOutOfRangeError("paymentAmount", amount, 0, math.MaxFloat64)
	}
	if !hasAtMostTwoDecimals(amount) {
		return Payment{}, errs.NewValueIsInvalidError("paymentAmount must have at most two decimal places")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Payment{}, errs.NewValueIsRequiredError("paymentReason")
	}
	if len(reason) > MaxPaymentReasonLength {
		return Payment{}, errs.NewValueIsOutOfRangeError("paymentReason", len(reason), 1, MaxPaymentReasonLength)
	}

	return Payment{
		amount: amount,
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// hasAtMostTwoDecimals reports whether the shortest decimal form of v has no
// more than two fractional digits. The string form avoids the float rounding
// error a multiply-and-round check accumulates on large amounts.
func hasAtMostTwoDecimals(v float64) bool {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	return dot == -1 || len(s)-dot-1 <= 2
}

// Amount returns the requested amount.
func (p Payment) Amount() float64 {
	return p.amount
}

// Reason returns the reason text.
func (p Payment) Reason() string {
	return p.reason
}

// Validate ensures the Payment was created via NewPayment.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}
