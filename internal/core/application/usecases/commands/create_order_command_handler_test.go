package commands_test

import (
	"testing"

	"remont/internal/core/application/usecases/commands"
	"remont/internal/core/domain/model/catalog"
	"remont/internal/core/domain/model/kernel"
	"remont/internal/core/domain/model/order"
	"remont/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func coveredAddress(t *testing.T, ownerID kernel.UUID) (*catalog.Address, *catalog.Branch) {
	t.Helper()

	point, err := kernel.NewGeoPoint(41.7151, 44.8271)
	require.NoError(t, err)
	address, err := catalog.NewAddress(kernel.NewUUID(), ownerID, "Rustaveli ave. 12", point)
	require.NoError(t, err)
	branch, err := catalog.NewBranch(kernel.NewUUID(), "Central", point, 30)
	require.NoError(t, err)

	return address, branch
}

func createOrderCommand(t *testing.T, customerID, categoryID, addressID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()

	customer, err := order.NewIndividualCustomer(customerID)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer,
		order.ServiceTypeFixOffSite, "Samsung", "WW80", "does not spin", categoryID, addressID)
	require.NoError(t, err)

	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	category, err := catalog.NewCategory(kernel.NewUUID(), "Washing machines")
	require.NoError(t, err)
	address, branch := coveredAddress(t, customerID)
	cmd := createOrderCommand(t, customerID, category.ID(), address.ID())

	categories := new(MockCategoryDirectory)
	addresses := new(MockAddressDirectory)
	branches := new(MockBranchDirectory)
	categories.On("FindActive", mock.Anything, category.ID()).Return(category, nil).Once()
	addresses.On("Find", mock.Anything, address.ID()).Return(address, nil).Once()
	branches.On("GetAll", mock.Anything).Return([]*catalog.Branch{branch}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, categories, addresses, branches)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	categories.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CategoryNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	address, _ := coveredAddress(t, customerID)
	cmd := createOrderCommand(t, customerID, categoryID, address.ID())

	categories := new(MockCategoryDirectory)
	categories.On("FindActive", mock.Anything, categoryID).
		Return(nil, errs.NewObjectNotFoundError("category", categoryID)).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, categories,
		new(MockAddressDirectory), new(MockBranchDirectory))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ForeignAddress(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	category, err := catalog.NewCategory(kernel.NewUUID(), "Washing machines")
	require.NoError(t, err)

	// address owned by somebody else
	address, _ := coveredAddress(t, kernel.NewUUID())
	cmd := createOrderCommand(t, customerID, category.ID(), address.ID())

	categories := new(MockCategoryDirectory)
	addresses := new(MockAddressDirectory)
	categories.On("FindActive", mock.Anything, category.ID()).Return(category, nil).Once()
	addresses.On("Find", mock.Anything, address.ID()).Return(address, nil).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, categories, addresses, new(MockBranchDirectory))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_AddressNotCovered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	category, err := catalog.NewCategory(kernel.NewUUID(), "Washing machines")
	require.NoError(t, err)
	address, _ := coveredAddress(t, customerID)
	cmd := createOrderCommand(t, customerID, category.ID(), address.ID())

	remote, err := kernel.NewGeoPoint(41.6168, 41.6367)
	require.NoError(t, err)
	remoteBranch, err := catalog.NewBranch(kernel.NewUUID(), "Batumi", remote, 10)
	require.NoError(t, err)

	categories := new(MockCategoryDirectory)
	addresses := new(MockAddressDirectory)
	branches := new(MockBranchDirectory)
	categories.On("FindActive", mock.Anything, category.ID()).Return(category, nil).Once()
	addresses.On("Find", mock.Anything, address.ID()).Return(address, nil).Once()
	branches.On("GetAll", mock.Anything).Return([]*catalog.Branch{remoteBranch}, nil).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, categories, addresses, branches)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory),
		new(MockCategoryDirectory), new(MockAddressDirectory), new(MockBranchDirectory))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
