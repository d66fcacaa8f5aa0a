package http

import (
	"log/slog"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CatalogServer serves the cake catalog endpoints.
type CatalogServer struct {
	createHandler commands.CreateCakeCommandHandler
	listHandler   queries.ListCatalogQueryHandler
	logger        *slog.Logger
}

func NewCatalogServer(
	createHandler commands.CreateCakeCommandHandler,
	listHandler queries.ListCatalogQueryHandler,
	logger *slog.Logger,
) *CatalogServer {
	return &CatalogServer{
		createHandler: createHandler,
		listHandler:   listHandler,
		logger:        logger.With(slog.String("server", "catalog")),
	}
}

func (s *CatalogServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/catalog", s.ListCatalog)
	e.POST("/catalog", s.CreateCake)
}

func (s *CatalogServer) ListCatalog(c echo.Context) error {
	cakes, err := s.listHandler.Handle(c.Request().Context(), queries.NewListCatalogQuery())
	if err != nil {
		s.logger.Error("list catalog failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Catalog retrieved successfully", cakes)
}

func (s *CatalogServer) CreateCake(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return RespondError(c, err)
	}

	cmd, err := commands.NewCreateCakeCommand(payload)
	if err != nil {
		return RespondError(c, err)
	}

	id, err := s.createHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("create cake failed", slog.Any("error", err))
		return RespondError(c, err)
	}

	return RespondSuccess(c, "Cake created successfully", map[string]any{"id": id})
}
