package cmd

import (
	"coffeeshop/internal/adapters/out/postgres"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateCoffeeItemCommandHandler() commands.CreateCoffeeItemCommandHandler {
	var f commands.CoffeeItemUoWFactory = FuncCoffeeItemUoWFactory(func() commands.CoffeeItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCoffeeItemCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateCoffeeItemCommandHandler() commands.UpdateCoffeeItemCommandHandler {
	var f commands.CoffeeItemUoWFactory = FuncCoffeeItemUoWFactory(func() commands.CoffeeItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCoffeeItemCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSetCoffeeItemAvailabilityCommandHandler() commands.SetCoffeeItemAvailabilityCommandHandler {
	var f commands.CoffeeItemUoWFactory = FuncCoffeeItemUoWFactory(func() commands.CoffeeItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCoffeeItemAvailabilityCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateBaristaCommandHandler() commands.CreateBaristaCommandHandler {
	var f commands.BaristaUoWFactory = FuncBaristaUoWFactory(func() commands.BaristaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBaristaCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignBaristaCommandHandler() commands.AssignBaristaCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignBaristaCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCoffeeItemUoWFactory func() commands.CoffeeItemUoW

func (f FuncCoffeeItemUoWFactory) Create() commands.CoffeeItemUoW {
	return f()
}

type FuncBaristaUoWFactory func() commands.BaristaUoW

func (f FuncBaristaUoWFactory) Create() commands.BaristaUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
