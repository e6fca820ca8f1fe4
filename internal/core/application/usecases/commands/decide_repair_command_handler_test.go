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

func TestNewDecideRepairCommand(t *testing.T) {
	caller := mustActor(t, actor.RoleCustomer, kernel.NewUUID())

	t.Run("should create approve decision without reason", func(t *testing.T) {
		cmd, err := commands.NewDecideRepairCommand(kernel.NewUUID(), caller,
			commands.RepairDecisionApprove, "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject cancel decision without reason", func(t *testing.T) {
		_, err := commands.NewDecideRepairCommand(kernel.NewUUID(), caller,
			commands.RepairDecisionCancel, "  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown decision", func(t *testing.T) {
		_, err := commands.NewDecideRepairCommand(kernel.NewUUID(), caller,
			commands.RepairDecision("maybe"), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDecideRepairCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	caller := mustActor(t, actor.RoleCustomer, customerID)
	technicianID := kernel.NewUUID()
	aggregate := restoredOrder(t, customerID, order.ServiceTypeFixOffSite,
		order.StatusWaitingDecision, &technicianID, nil)
	cmd, err := commands.NewDecideRepairCommand(aggregate.ID(), caller,
		commands.RepairDecisionCancel, "too expensive")
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

	h := commands.NewDecideRepairCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRepairCancelled, aggregate.Status())
	assert.Equal(t, "too expensive", aggregate.CancelReason())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideRepairCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	caller := mustActor(t, actor.RoleCustomer, customerID)
	technicianID := kernel.NewUUID()
	aggregate := restoredOrder(t, customerID, order.ServiceTypeFixOffSite,
		order.StatusWaitingDecision, &technicianID, nil)
	cmd, err := commands.NewDecideRepairCommand(aggregate.ID(), caller,
		commands.RepairDecisionApprove, "")
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

	h := commands.NewDecideRepairCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRepairingOffSite, aggregate.Status())
}

func TestDecideRepairCommandHandler_Handle_NonCustomer(t *testing.T) {
	ctx := t.Context()
	caller := mustActor(t, actor.RoleTechnician, kernel.NewUUID())
	cmd, err := commands.NewDecideRepairCommand(kernel.NewUUID(), caller,
		commands.RepairDecisionApprove, "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewDecideRepairCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}
