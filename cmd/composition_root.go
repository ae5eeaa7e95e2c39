package cmd

import (
	"log/slog"

	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderPaymentCommandHandler() commands.ConfirmOrderPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDroneCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateDroneBatteryCommandHandler() commands.UpdateDroneBatteryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDroneBatteryCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDroneCommandHandler() commands.UpdateDroneCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDroneLocationCommandHandler() commands.UpdateDroneLocationCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDroneLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDroneStatusCommandHandler() commands.UpdateDroneStatusCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDroneStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDroneCommandHandler() commands.DeleteDroneCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileFleetCommandHandler() commands.ReconcileFleetCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileFleetCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDronesQueryHandler() queries.GetAvailableDronesQueryHandler {
	return queries.NewGetAvailableDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopDronesQueryHandler() queries.GetShopDronesQueryHandler {
	return queries.NewGetShopDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
