// Package http exposes the ordering use cases as a JSON API on echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server handles HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderLineHandler    commands.AddOrderLineCommandHandler
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		addOrderLineHandler:    addOrderLineHandler,
		removeOrderLineHandler: removeOrderLineHandler,
		getOrderHandler:        getOrderHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the health check, the API description and the order
// API on e. Order API requests are validated against doc before they reach
// a handler.
func (s *Server) RegisterRoutes(e *echo.Echo, doc *openapi3.T) error {
	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.GET("/health", s.Health)
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/lines", s.AddOrderLine)
	api.DELETE("/orders/:id/lines/:productNumber", s.RemoveOrderLine)

	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - opens a new, empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderFromResponse(resp))
}

// AddOrderLine handles POST /api/v1/orders/:id/lines.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrderLine
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err = errors.Join(
		required("productNumber", body.ProductNumber),
		required("price", body.Price),
		required("productCount", body.ProductCount),
	); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderLineCommand(orderID, *body.ProductNumber, *body.Price, *body.ProductCount)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderLine handles DELETE /api/v1/orders/:id/lines/:productNumber.
// Removing a product that is not on the order still answers 204.
func (s *Server) RemoveOrderLine(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var productNumber int
	if err = bindPathParam(ctx, "productNumber", &productNumber); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product number",
		})
	}

	cmd, err := commands.NewRemoveOrderLineCommand(orderID, productNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail maps err to a status code and writes the JSON error body.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func bindPathParam(ctx echo.Context, name string, dest any) error {
	return runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
}

func bindOrderID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	if err := bindPathParam(ctx, "id", &raw); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(raw)
}

func required(field string, v *int) error {
	if v == nil {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}
