package order_test

import (
	"strings"
	"testing"

	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, serviceType order.ServiceType) *order.Order {
	t.Helper()

	customer, err := order.NewIndividualCustomer(kernel.NewUUID())
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, serviceType,
		"Bosch", "KGN39", "leaks water", kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomer, err := order.NewCompanyCustomer(kernel.NewUUID())
	require.NoError(t, err)
	validCategoryID := kernel.NewUUID()
	validAddressID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, order.ServiceTypeFixOffSite,
			"Samsung", "WW80", "does not spin", validCategoryID, validAddressID)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.ServiceTypeFixOffSite, o.ServiceType())
		assert.Equal(t, int64(1), o.Version())
		assert.Nil(t, o.Technician())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.Payment())
		assert.Empty(t, o.CancelReason())
		assert.Empty(t, o.Events())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCustomer, order.ServiceTypeInstallation,
			"Samsung", "WW80", "", validCategoryID, validAddressID)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed customer", func(t *testing.T) {
		var invalidCustomer order.CustomerRef

		o, err := order.NewOrder(validID, invalidCustomer, order.ServiceTypeInstallation,
			"Samsung", "WW80", "", validCategoryID, validAddressID)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unknown service type", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, order.ServiceTypeUnknown,
			"Samsung", "WW80", "", validCategoryID, validAddressID)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with blank brand", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, order.ServiceTypeInstallation,
			"  ", "WW80", "", validCategoryID, validAddressID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidCustomer order.CustomerRef

		o, err := order.NewOrder(invalidID, invalidCustomer, order.ServiceTypeUnknown,
			"", "", "", validCategoryID, validAddressID)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject directly instantiated order", func(t *testing.T) {
		var o order.Order

		require.Error(t, o.Validate())
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with staff, payment and cancel reason", func(t *testing.T) {
		customer, err := order.NewCompanyCustomer(kernel.NewUUID())
		require.NoError(t, err)
		technicianID := kernel.NewUUID()
		payment, err := order.NewPayment(50, "new motor")
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.NewUUID(), customer, order.ServiceTypeFixOffSite,
			order.StatusRepairCancelled, "Samsung", "WW80", "does not spin",
			kernel.NewUUID(), kernel.NewUUID(), &technicianID, nil, "too expensive", &payment, 7)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusRepairCancelled, o.Status())
		assert.Equal(t, int64(7), o.Version())
		assert.Equal(t, "too expensive", o.CancelReason())
		require.NotNil(t, o.Payment())
		assert.InDelta(t, 50.0, o.Payment().Amount(), 0.001)
		require.NotNil(t, o.Technician())
		assert.True(t, o.Technician().IsEqual(technicianID))
		assert.Nil(t, o.Courier())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		customer, err := order.NewCompanyCustomer(kernel.NewUUID())
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.NewUUID(), customer, order.ServiceTypeFixOffSite,
			order.StatusUnknown, "Samsung", "WW80", "", kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, "", nil, 1)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with non-positive version", func(t *testing.T) {
		customer, err := order.NewCompanyCustomer(kernel.NewUUID())
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.NewUUID(), customer, order.ServiceTypeFixOffSite,
			order.StatusPending, "Samsung", "WW80", "", kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, "", nil, 0)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_OffSiteRepairRejectionFlow(t *testing.T) {
	o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusAssigned)

	steps := []struct {
		action order.Action
		status order.Status
	}{
		{order.ActionStartPickup, order.StatusPickupStarted},
		{order.ActionPickedUp, order.StatusPickedUp},
		{order.ActionToTechnician, order.StatusToTechnician},
		{order.ActionDeliveredToTechnician, order.StatusDeliveredToTechnician},
		{order.ActionInspection, order.StatusInspection},
	}
	for _, step := range steps {
		require.NoError(t, o.Apply(step.action))
		assert.Equal(t, step.status, o.Status())
	}

	estimate, err := order.NewPayment(50, "new motor")
	require.NoError(t, err)
	require.NoError(t, o.RequestDecision(estimate))
	assert.Equal(t, order.StatusWaitingDecision, o.Status())
	require.NotNil(t, o.Payment())
	assert.InDelta(t, 50.0, o.Payment().Amount(), 0.001)
	assert.Equal(t, "new motor", o.Payment().Reason())

	require.NoError(t, o.RejectRepair("too expensive"))
	assert.Equal(t, order.StatusRepairCancelled, o.Status())
	assert.Equal(t, "too expensive", o.CancelReason())

	// the rejected estimate stays on the order for audit
	require.NotNil(t, o.Payment())
	assert.InDelta(t, 50.0, o.Payment().Amount(), 0.001)

	require.NoError(t, o.Apply(order.ActionBrokenReady))
	require.NoError(t, o.Apply(order.ActionReturningBroken))
	require.NoError(t, o.Apply(order.ActionReturnedBroken))
	require.NoError(t, o.Apply(order.ActionCancelled))
	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.True(t, o.Status().IsTerminal())

	assert.Len(t, o.Events(), 11)
}

func TestOrder_OffSiteRepairApprovalFlow(t *testing.T) {
	o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusWaitingDecision)

	require.NoError(t, o.ApproveRepair())
	assert.Equal(t, order.StatusRepairingOffSite, o.Status())

	require.NoError(t, o.Apply(order.ActionFixedReady))
	require.NoError(t, o.Apply(order.ActionReturningFixed))
	require.NoError(t, o.Apply(order.ActionReturnedFixed))
	require.NoError(t, o.Apply(order.ActionCompleted))
	assert.Equal(t, order.StatusCompleted, o.Status())
	assert.Empty(t, o.CancelReason())
}

func TestOrder_InstallationFlow(t *testing.T) {
	o := newOrderAt(t, order.ServiceTypeInstallation, order.StatusAssigned)

	require.NoError(t, o.Apply(order.ActionTechnicianComing))
	assert.Equal(t, order.StatusTechnicianComing, o.Status())

	// on-site repair work is foreign to an installation order
	err := o.Apply(order.ActionRepairingOnSite)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusTechnicianComing, o.Status())

	require.NoError(t, o.Apply(order.ActionInstalling))
	assert.Equal(t, order.StatusInstalling, o.Status())

	bill, err := order.NewPayment(100, "parts")
	require.NoError(t, err)
	require.NoError(t, o.RequestPayment(bill))
	assert.Equal(t, order.StatusWaitingPayment, o.Status())

	require.NoError(t, o.Apply(order.ActionCompletedOnSite))
	assert.Equal(t, order.StatusCompletedOnSiteInstalling, o.Status())
}

func TestOrder_OnSiteRepairFlow(t *testing.T) {
	o := newOrderAt(t, order.ServiceTypeFixOnSite, order.StatusAssigned)

	require.NoError(t, o.Apply(order.ActionTechnicianComing))
	require.NoError(t, o.Apply(order.ActionRepairingOnSite))

	bill, err := order.NewPayment(80, "compressor")
	require.NoError(t, err)
	require.NoError(t, o.RequestPayment(bill))

	require.NoError(t, o.Apply(order.ActionCompletedOnSite))
	assert.Equal(t, order.StatusCompletedOnSiteRepairing, o.Status())
}

func TestOrder_PayloadRequirements(t *testing.T) {
	t.Run("should reject estimate action without payment", func(t *testing.T) {
		o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusInspection)

		err := o.Apply(order.ActionWaitingDecision)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusInspection, o.Status())
	})

	t.Run("should reject repair cancellation without reason", func(t *testing.T) {
		o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusWaitingDecision)

		err := o.RejectRepair("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.StatusWaitingDecision, o.Status())
		assert.Empty(t, o.CancelReason())
	})

	t.Run("should reject overlong cancel reason", func(t *testing.T) {
		o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusWaitingDecision)

		err := o.RejectRepair(strings.Repeat("x", order.MaxCancelReasonLength+1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject invalid estimate", func(t *testing.T) {
		o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusInspection)

		var p order.Payment
		err := o.RequestDecision(p)

		require.Error(t, err)
		assert.Equal(t, order.StatusInspection, o.Status())
	})
}

func TestOrder_PendingUpdates(t *testing.T) {
	t.Run("should update details while pending", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		require.NoError(t, o.UpdateDetails("LG", "F4V5", "makes noise"))
		assert.Equal(t, "LG", o.Brand())
		assert.Equal(t, "F4V5", o.Model())
		assert.Equal(t, "makes noise", o.Description())
	})

	t.Run("should change category and address while pending", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		categoryID := kernel.NewUUID()
		addressID := kernel.NewUUID()

		require.NoError(t, o.ChangeCategory(categoryID))
		require.NoError(t, o.ChangeAddress(addressID))
		assert.True(t, o.CategoryID().IsEqual(categoryID))
		assert.True(t, o.AddressID().IsEqual(addressID))
	})

	t.Run("should reject updates once the order left pending", func(t *testing.T) {
		o := newOrderAt(t, order.ServiceTypeFixOffSite, order.StatusAssigned)

		assert.ErrorIs(t, o.UpdateDetails("LG", "F4V5", ""), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.ChangeCategory(kernel.NewUUID()), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.ChangeAddress(kernel.NewUUID()), errs.ErrInvalidTransition)
	})
}

func TestOrder_StaffAssignment(t *testing.T) {
	t.Run("should record event on first technician assignment", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		technicianID := kernel.NewUUID()

		require.NoError(t, o.AssignTechnician(technicianID))

		assert.Equal(t, order.StatusPending, o.Status(), "assignment must not change status")
		require.NotNil(t, o.Technician())
		assert.True(t, o.Technician().IsEqual(technicianID))

		events := o.Events()
		require.Len(t, events, 1)
		e, ok := events[0].(order.StaffAssignedEvent)
		require.True(t, ok)
		assert.Equal(t, actor.RoleTechnician, e.Role)
		assert.Nil(t, e.Previous)
		assert.True(t, e.Assigned.IsEqual(technicianID))
	})

	t.Run("should record previous technician on reassignment", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AssignTechnician(first))
		require.NoError(t, o.AssignTechnician(second))

		events := o.Events()
		require.Len(t, events, 2)
		e, ok := events[1].(order.StaffAssignedEvent)
		require.True(t, ok)
		require.NotNil(t, e.Previous)
		assert.True(t, e.Previous.IsEqual(first))
		assert.True(t, e.Assigned.IsEqual(second))
	})

	t.Run("should be a no-op when assigning the same technician", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		technicianID := kernel.NewUUID()

		require.NoError(t, o.AssignTechnician(technicianID))
		o.ClearEvents()
		require.NoError(t, o.AssignTechnician(technicianID))

		assert.Empty(t, o.Events())
	})

	t.Run("should assign courier independently", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		courierID := kernel.NewUUID()

		require.NoError(t, o.AssignCourier(courierID))

		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
		assert.Nil(t, o.Technician())

		events := o.Events()
		require.Len(t, events, 1)
		e, ok := events[0].(order.StaffAssignedEvent)
		require.True(t, ok)
		assert.Equal(t, actor.RoleCourier, e.Role)
	})

	t.Run("should fail with invalid staff id", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)
		var invalidID kernel.UUID

		require.Error(t, o.AssignTechnician(invalidID))
		require.Error(t, o.AssignCourier(invalidID))
	})
}

func TestOrder_OverrideStatus(t *testing.T) {
	adminRecipients := []actor.Role{actor.RoleAdmin, actor.RoleCustomer}

	t.Run("should set any status bypassing the transition table", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		require.NoError(t, o.OverrideStatus(order.StatusAssigned, adminRecipients))

		assert.Equal(t, order.StatusAssigned, o.Status())
		events := o.Events()
		require.Len(t, events, 1)
		e, ok := events[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, order.StatusPending, e.From)
		assert.Equal(t, order.StatusAssigned, e.To)
		assert.Equal(t, adminRecipients, e.Recipients)
	})

	t.Run("should reject setting the current status", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		err := o.OverrideStatus(order.StatusPending, adminRecipients)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStatusNotChanged)
		assert.Empty(t, o.Events())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		require.Error(t, o.OverrideStatus(order.StatusUnknown, adminRecipients))
	})
}

func TestOrder_ChangeServiceType(t *testing.T) {
	recipients := []actor.Role{actor.RoleAdmin, actor.RoleCustomer}

	t.Run("should switch flows and record event", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		require.NoError(t, o.ChangeServiceType(order.ServiceTypeInstallation, recipients))

		assert.Equal(t, order.ServiceTypeInstallation, o.ServiceType())
		events := o.Events()
		require.Len(t, events, 1)
		e, ok := events[0].(order.ServiceTypeChangedEvent)
		require.True(t, ok)
		assert.Equal(t, order.ServiceTypeFixOffSite, e.From)
		assert.Equal(t, order.ServiceTypeInstallation, e.To)
	})

	t.Run("should be a no-op for the same service type", func(t *testing.T) {
		o := newPendingOrder(t, order.ServiceTypeFixOffSite)

		require.NoError(t, o.ChangeServiceType(order.ServiceTypeFixOffSite, recipients))
		assert.Empty(t, o.Events())
	})
}

func TestOrder_Ownership(t *testing.T) {
	t.Run("should recognize owning customer", func(t *testing.T) {
		customerID := kernel.NewUUID()
		customer, err := order.NewIndividualCustomer(customerID)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), customer, order.ServiceTypeInstallation,
			"Bosch", "KGN39", "", kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		assert.True(t, o.IsOwnedBy(customerID))
		assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	})
}
