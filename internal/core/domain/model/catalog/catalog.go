package catalog

import (
	"errors"
	"fmt"
	"strings"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// Domain errors for catalog entities.
var (
	// ErrNameIsRequired is returned when attempting to create an entity without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
	// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
	// ErrBranchIsNotConstructed is returned when using an improperly initialized Branch.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")
)

// Category is a service category an order is filed under (e.g. washing
// machines, air conditioners). Orders may only reference active categories.
type Category struct {
	id     kernel.UUID
	name   string
	active bool
	guard  guard.ConstructorGuard
}

// NewCategory creates a Category. New categories start active.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory rebuilds a Category from persisted state.
func RestoreCategory(id kernel.UUID, name string, active bool) (*Category, error) {
	c, err := NewCategory(id, name)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

// Validate ensures the Category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category's display name.
func (c *Category) Name() string {
	return c.name
}

// IsActive reports whether new orders may reference this category.
func (c *Category) IsActive() bool {
	return c.active
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// Address is a customer-owned service location. Its coordinates are checked
// against branch coverage when an order is created or its address changes.
type Address struct {
	id      kernel.UUID
	ownerID kernel.UUID
	label   string
	point   kernel.GeoPoint
	guard   guard.ConstructorGuard
}

// NewAddress creates an Address owned by the given customer.
func NewAddress(id, ownerID kernel.UUID, label string, point kernel.GeoPoint) (*Address, error) {
	a := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOwnerID(ownerID),
		a.setLabel(label),
		a.setPoint(point),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// OwnerID returns the id of the customer owning the address.
func (a *Address) OwnerID() kernel.UUID {
	return a.ownerID
}

// Label returns the human-readable address text.
func (a *Address) Label() string {
	return a.label
}

// Point returns the address coordinates.
func (a *Address) Point() kernel.GeoPoint {
	return a.point
}

// IsOwnedBy reports whether the given customer owns the address.
func (a *Address) IsOwnedBy(customerID kernel.UUID) bool {
	return a.ownerID.IsEqual(customerID)
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("owner", err)
	}
	a.ownerID = ownerID
	return nil
}

func (a *Address) setLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errs.NewValueIsRequiredError("label")
	}
	a.label = label
	return nil
}

func (a *Address) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.point = point
	return nil
}

// Branch is a service center location with a circular coverage area. An
// address is serviceable when at least one branch covers it.
type Branch struct {
	id               kernel.UUID
	name             string
	point            kernel.GeoPoint
	coverageRadiusKm float64
	guard            guard.ConstructorGuard
}

// NewBranch creates a Branch with the given coverage radius in kilometers.
func NewBranch(id kernel.UUID, name string, point kernel.GeoPoint, coverageRadiusKm float64) (*Branch, error) {
	b := &Branch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setPoint(point),
		b.setCoverageRadiusKm(coverageRadiusKm),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Branch was created through a constructor.
func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the branch's display name.
func (b *Branch) Name() string {
	return b.name
}

// Point returns the branch coordinates.
func (b *Branch) Point() kernel.GeoPoint {
	return b.point
}

// CoverageRadiusKm returns the branch coverage radius in kilometers.
func (b *Branch) CoverageRadiusKm() float64 {
	return b.coverageRadiusKm
}

// Covers reports whether the given point lies within the branch's
// coverage radius.
func (b *Branch) Covers(point kernel.GeoPoint) bool {
	return b.point.WithinRadiusKm(point, b.coverageRadiusKm)
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	b.name = name
	return nil
}

func (b *Branch) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	b.point = point
	return nil
}

func (b *Branch) setCoverageRadiusKm(radius float64) error {
	if radius <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("coverage radius",
			fmt.Errorf("%v is not greater than 0", radius))
	}
	b.coverageRadiusKm = radius
	return nil
}
