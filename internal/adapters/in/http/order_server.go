package http

import (
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// OrderServer serves the order endpoints.
type OrderServer struct {
	createHandler commands.CreateOrderCommandHandler
	updateHandler commands.UpdateOrderCommandHandler
	deleteHandler commands.DeleteOrderCommandHandler
	listHandler   queries.ListOrdersQueryHandler
	getHandler    queries.GetOrderQueryHandler
	logger        *slog.Logger
}

func NewOrderServer(
	createHandler commands.CreateOrderCommandHandler,
	updateHandler commands.UpdateOrderCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	listHandler queries.ListOrdersQueryHandler,
	getHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *OrderServer {
	return &OrderServer{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		getHandler:    getHandler,
		logger:        logger.With(slog.String("server", "orders")),
	}
}

func (s *OrderServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.DELETE("/orders/:id", s.DeleteOrder)
}

func (s *OrderServer) ListOrders(c echo.Context) error {
	orders, err := s.listHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		s.logger.Error("list orders failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Orders retrieved successfully", orders)
}

func (s *OrderServer) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return RespondError(c, err)
	}

	result, err := s.getHandler.Handle(c.Request().Context(), query)
	if err != nil {
		s.logger.Error("get order failed", slog.Int("order_id", id), slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Order retrieved successfully", result)
}

func (s *OrderServer) CreateOrder(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(payload)
	if err != nil {
		return RespondError(c, err)
	}

	id, err := s.createHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("create order failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Order created successfully", map[string]any{"id": id})
}

func (s *OrderServer) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}

	payload, err := bindPayload(c)
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, payload)
	if err != nil {
		return RespondError(c, err)
	}

	if err := s.updateHandler.Handle(c.Request().Context(), cmd); err != nil {
		s.logger.Error("update order failed", slog.Int("order_id", id), slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Order update successfully", nil)
}

func (s *OrderServer) DeleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return RespondError(c, err)
	}

	if err := s.deleteHandler.Handle(c.Request().Context(), cmd); err != nil {
		s.logger.Error("delete order failed", slog.Int("order_id", id), slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Order eliminated successfully", nil)
}
