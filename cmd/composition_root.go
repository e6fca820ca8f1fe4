package cmd

import (
	"log/slog"

	"remont/internal/adapters/out/notifier"
	"remont/internal/adapters/out/postgres"
	"remont/internal/adapters/out/postgres/catalogrepo"
	"remont/internal/adapters/out/postgres/outboxrepo"
	"remont/internal/adapters/out/postgres/staffrepo"
	"remont/internal/core/application/usecases/commands"
	"remont/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		catalogrepo.NewGormCategoryDirectory(c.gormDB),
		catalogrepo.NewGormAddressDirectory(c.gormDB),
		catalogrepo.NewGormBranchDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(
		c.orderUoWFactory(),
		catalogrepo.NewGormCategoryDirectory(c.gormDB),
		catalogrepo.NewGormAddressDirectory(c.gormDB),
		catalogrepo.NewGormBranchDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestPaymentCommandHandler() commands.RequestPaymentCommandHandler {
	return commands.NewRequestPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDecideRepairCommandHandler() commands.DecideRepairCommandHandler {
	return commands.NewDecideRepairCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAdminOrderCommandHandler() commands.UpdateAdminOrderCommandHandler {
	return commands.NewUpdateAdminOrderCommandHandler(
		c.orderUoWFactory(),
		staffrepo.NewGormTechnicianDirectory(c.gormDB),
		staffrepo.NewGormCourierDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler(logger *slog.Logger) commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(
		outboxrepo.NewGormNotificationOutbox(c.gormDB),
		notifier.NewHTTPNotificationClient(c.config.NotificationServiceURL),
		logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
