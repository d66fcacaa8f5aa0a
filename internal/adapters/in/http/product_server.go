package http

import (
	"log/slog"
	"strconv"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultProductOffset = 0
	defaultProductLimit  = 10
)

// ProductServer serves the product endpoints.
type ProductServer struct {
	createHandler commands.CreateProductCommandHandler
	deleteHandler commands.DeleteProductCommandHandler
	listHandler   queries.ListProductsQueryHandler
	logger        *slog.Logger
}

func NewProductServer(
	createHandler commands.CreateProductCommandHandler,
	deleteHandler commands.DeleteProductCommandHandler,
	listHandler queries.ListProductsQueryHandler,
	logger *slog.Logger,
) *ProductServer {
	return &ProductServer{
		createHandler: createHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		logger:        logger.With(slog.String("server", "products")),
	}
}

func (s *ProductServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", s.ListProducts)
	e.POST("/products", s.CreateProduct)
	e.DELETE("/products/:id", s.DeleteProduct)
}

func (s *ProductServer) ListProducts(c echo.Context) error {
	offset, err := queryInt(c, "offset", defaultProductOffset)
	if err != nil {
		return RespondError(c, err)
	}

	limit, err := queryInt(c, "limit", defaultProductLimit)
	if err != nil {
		return RespondError(c, err)
	}

	query, err := queries.NewListProductsQuery(offset, limit)
	if err != nil {
		return RespondError(c, err)
	}

	products, err := s.listHandler.Handle(c.Request().Context(), query)
	if err != nil {
		s.logger.Error("list products failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Products retrieved successfully", products)
}

func (s *ProductServer) CreateProduct(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewCreateProductCommand(payload)
	if err != nil {
		return RespondError(c, err)
	}

	id, err := s.createHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("create product failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Product created successfully", map[string]any{"id": id})
}

func (s *ProductServer) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return RespondError(c, err)
	}

	if err := s.deleteHandler.Handle(c.Request().Context(), cmd); err != nil {
		s.logger.Error("delete product failed", slog.Int("product_id", id), slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Product eliminated successfully", nil)
}

// queryInt reads an optional integer query parameter, falling back to the
// default when the parameter is absent or blank.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError([]errs.FieldViolation{
			{Field: name, Message: "must be an integer"},
		})
	}

	return value, nil
}
