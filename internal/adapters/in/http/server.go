// Package http exposes the fulfillment API over echo. Handlers bind and
// translate requests into commands and queries; all domain decisions
// stay in the application layer.
package http

import (
	"dronedelivery/internal/adapters/in/http/auth"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	confirmOrderPaymentHandler commands.ConfirmOrderPaymentCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	assignDroneHandler         commands.AssignDroneCommandHandler
	updateDroneBatteryHandler  commands.UpdateDroneBatteryCommandHandler
	createDroneHandler         commands.CreateDroneCommandHandler
	updateDroneHandler         commands.UpdateDroneCommandHandler
	updateDroneLocationHandler commands.UpdateDroneLocationCommandHandler
	updateDroneStatusHandler   commands.UpdateDroneStatusCommandHandler
	deleteDroneHandler         commands.DeleteDroneCommandHandler

	// Query handlers
	getUserOrdersHandler      queries.GetUserOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getShopOrdersHandler      queries.GetShopOrdersQueryHandler
	getAvailableDronesHandler queries.GetAvailableDronesQueryHandler
	getShopDronesHandler      queries.GetShopDronesQueryHandler
	getDroneHandler           queries.GetDroneQueryHandler
}

// Handlers carries the use-case handlers the server dispatches to.
type Handlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	ConfirmOrderPayment commands.ConfirmOrderPaymentCommandHandler
	ChangeOrderStatus   commands.ChangeOrderStatusCommandHandler
	AssignDrone         commands.AssignDroneCommandHandler
	UpdateDroneBattery  commands.UpdateDroneBatteryCommandHandler
	CreateDrone         commands.CreateDroneCommandHandler
	UpdateDrone         commands.UpdateDroneCommandHandler
	UpdateDroneLocation commands.UpdateDroneLocationCommandHandler
	UpdateDroneStatus   commands.UpdateDroneStatusCommandHandler
	DeleteDrone         commands.DeleteDroneCommandHandler

	GetUserOrders      queries.GetUserOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetShopOrders      queries.GetShopOrdersQueryHandler
	GetAvailableDrones queries.GetAvailableDronesQueryHandler
	GetShopDrones      queries.GetShopDronesQueryHandler
	GetDrone           queries.GetDroneQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:         handlers.CreateOrder,
		cancelOrderHandler:         handlers.CancelOrder,
		confirmOrderPaymentHandler: handlers.ConfirmOrderPayment,
		changeOrderStatusHandler:   handlers.ChangeOrderStatus,
		assignDroneHandler:         handlers.AssignDrone,
		updateDroneBatteryHandler:  handlers.UpdateDroneBattery,
		createDroneHandler:         handlers.CreateDrone,
		updateDroneHandler:         handlers.UpdateDrone,
		updateDroneLocationHandler: handlers.UpdateDroneLocation,
		updateDroneStatusHandler:   handlers.UpdateDroneStatus,
		deleteDroneHandler:         handlers.DeleteDrone,
		getUserOrdersHandler:       handlers.GetUserOrders,
		getOrderHandler:            handlers.GetOrder,
		getShopOrdersHandler:       handlers.GetShopOrders,
		getAvailableDronesHandler:  handlers.GetAvailableDrones,
		getShopDronesHandler:       handlers.GetShopDrones,
		getDroneHandler:            handlers.GetDrone,
	}
}

// RegisterRoutes mounts every API route under /api/v1 behind the
// Bearer-JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", auth.Middleware(jwtSecret))

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetUserOrders)
	orders.GET("/shop/my-orders", s.GetShopOrders)
	orders.GET("/shop/:orderId", s.GetShopOrder)
	orders.PUT("/shop/:orderId/status", s.ChangeOrderStatus)
	orders.GET("/shop/:orderId/available-drones", s.GetAvailableDrones)
	orders.POST("/shop/:orderId/assign-drone", s.AssignDrone)
	orders.PUT("/shop/:orderId/drone-battery", s.UpdateDroneBattery)
	orders.GET("/:orderId", s.GetOrder)
	orders.PUT("/:orderId/cancel", s.CancelOrder)

	drones := api.Group("/drones")
	drones.POST("/create", s.CreateDrone)
	drones.GET("/shop/:shopId", s.GetShopDrones)
	drones.GET("/:droneId", s.GetDrone)
	drones.PUT("/:droneId", s.UpdateDrone)
	drones.PUT("/:droneId/location", s.UpdateDroneLocation)
	drones.PUT("/:droneId/status", s.UpdateDroneStatus)
	drones.DELETE("/:droneId", s.DeleteDrone)

	api.PUT("/payments/:orderId/confirm", s.ConfirmOrderPayment)
}
