package commands_test

import (
	"testing"

	"remont/internal/core/application/usecases/commands"
	"remont/internal/core/domain/model/actor"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRequestPaymentCommand(t *testing.T) {
	caller := mustActor(t, actor.RoleTechnician, kernel.NewUUID())

	t.Run("should reject payload-free action", func(t *testing.T) {
		_, err := commands.NewRequestPaymentCommand(kernel.NewUUID(),
			order.ActionInspection, caller, 50, "new motor")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid amount", func(t *testing.T) {
		_, err := commands.NewRequestPaymentCommand(kernel.NewUUID(),
			order.ActionWaitingDecision, caller, -5, "new motor")

		require.Error(t, err)
	})

	t.Run("should reject blank reason", func(t *testing.T) {
		_, err := commands.NewRequestPaymentCommand(kernel.NewUUID(),
			order.ActionWaitingDecision, caller, 50, " ")

		require.Error(t, err)
	})
}

func TestRequestPaymentCommandHandler_Handle_Estimate(t *testing.T) {
	ctx := t.Context()
	technicianID := kernel.NewUUID()
	caller := mustActor(t, actor.RoleTechnician, technicianID)
	aggregate := restoredOrder(t, kernel.NewUUID(), order.ServiceTypeFixOffSite,
		order.StatusInspection, &technicianID, nil)
	cmd, err := commands.NewRequestPaymentCommand(aggregate.ID(),
		order.ActionWaitingDecision, caller, 50, "new motor")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForActor", mock.Anything, aggregate.ID(), caller).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Enqueue", mock.Anything, mock.AnythingOfType("[]ports.NotificationEnvelope")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusWaitingDecision, aggregate.Status())
	require.NotNil(t, aggregate.Payment())
	assert.InDelta(t, 50.0, aggregate.Payment().Amount(), 0.001)
	assert.Equal(t, "new motor", aggregate.Payment().Reason())
}

func TestRequestPaymentCommandHandler_Handle_RoleMismatch(t *testing.T) {
	ctx := t.Context()
	caller := mustActor(t, actor.RoleCourier, kernel.NewUUID())
	cmd, err := commands.NewRequestPaymentCommand(kernel.NewUUID(),
		order.ActionWaitingPayment, caller, 100, "parts")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewRequestPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}
