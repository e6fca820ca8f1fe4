// Package guard provides a defensive-programming primitive that ensures
// domain objects are only created through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value struct initialization. Embed one in a
// domain object and set it via NewConstructorGuard inside the constructor;
// Validate then distinguishes constructed instances from zero values.
//
// Example:
//
//	type Payment struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPayment(amount float64) (Payment, error) {
//	    // validation ...
//	    return Payment{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
