package staff

import (
	"errors"
	"strings"

	"remont/internal/core/domain/model/kernel"
	"remont/internal/pkg/errs"
	"remont/internal/pkg/guard"
)

// Domain errors for staff members.
var (
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a staff member without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrTechnicianIsNotConstructed is returned when using an improperly initialized Technician.
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician constructor")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Technician is a repair specialist who can be assigned to orders.
// Only active technicians are valid reassignment targets.
type Technician struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
	guard  guard.ConstructorGuard
}

// NewTechnician creates a Technician. New technicians start active.
func NewTechnician(id kernel.UUID, name, phone string) (*Technician, error) {
	t := &Technician{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTechnician rebuilds a Technician from persisted state.
func RestoreTechnician(id kernel.UUID, name, phone string, active bool) (*Technician, error) {
	t, err := NewTechnician(id, name, phone)
	if err != nil {
		return nil, err
	}
	t.active = active
	return t, nil
}

// Validate ensures the Technician was created through a constructor.
func (t *Technician) Validate() error {
	if t == nil {
		return ErrTechnicianIsNotConstructed
	}
	return t.guard.Validate(ErrTechnicianIsNotConstructed)
}

// ID returns the technician's unique identifier.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// Name returns the technician's display name.
func (t *Technician) Name() string {
	return t.name
}

// Phone returns the technician's contact phone.
func (t *Technician) Phone() string {
	return t.phone
}

// IsActive reports whether the technician may receive new assignments.
func (t *Technician) IsActive() bool {
	return t.active
}

// Deactivate removes the technician from the assignment pool. Existing
// assignments are unaffected.
func (t *Technician) Deactivate() {
	t.active = false
}

// Activate returns the technician to the assignment pool.
func (t *Technician) Activate() {
	t.active = true
}

func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Technician) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}

func (t *Technician) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	t.phone = phone
	return nil
}

// Courier transports items between customers and the service center for
// off-site repairs. Only active couriers are valid reassignment targets.
type Courier struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
	guard  guard.ConstructorGuard
}

// NewCourier creates a Courier. New couriers start active.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier rebuilds a Courier from persisted state.
func RestoreCourier(id kernel.UUID, name, phone string, active bool) (*Courier, error) {
	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// IsActive reports whether the courier may receive new assignments.
func (c *Courier) IsActive() bool {
	return c.active
}

// Deactivate removes the courier from the assignment pool.
func (c *Courier) Deactivate() {
	c.active = false
}

// Activate returns the courier to the assignment pool.
func (c *Courier) Activate() {
	c.active = true
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
