// Package devserver is a development stand-in for the hosted product
// service. It implements the same HTTP contract the client is written
// against, so the library can be exercised end-to-end without the real
// backend.
package devserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type productPayload struct {
	Name     string  `json:"nombre"`
	Price    float64 `json:"precio"`
	ImageURL *string `json:"imagenUrl"`
}

type Server struct {
	echo   *echo.Echo
	store  *Store
	logger logger.ZapLogger
}

func NewServer(store *Store, log logger.ZapLogger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, store: store, logger: log}

	e.GET("/api/productos", s.listProductos)
	e.GET("/api/productos/:id", s.getProducto)
	e.POST("/api/productos", s.createProducto)
	e.PUT("/api/productos/:id", s.updateProducto)
	e.DELETE("/api/productos/:id", s.deleteProducto)

	return s
}

// Handler exposes the server as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) listProductos(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))

	rows, err := s.store.List(c.Request().Context(), q)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to query products")
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) getProducto(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	p, err := s.store.FindByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to query product")
	}
	if p == nil {
		return fail(c, http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createProducto(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "nombre is required")
	}
	if payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "precio must not be negative")
	}

	p := &model.Product{
		Name:     payload.Name,
		Price:    payload.Price,
		ImageURL: payload.ImageURL,
	}

	id, err := s.store.Insert(c.Request().Context(), p)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create product")
	}
	p.ID = id

	s.logger.Debug("created product", zap.Int64("id", id), zap.String("name", p.Name))
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProducto(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "nombre is required")
	}
	if payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "precio must not be negative")
	}

	// Full replacement; the path id wins over anything in the body.
	p := &model.Product{
		ID:       id,
		Name:     payload.Name,
		Price:    payload.Price,
		ImageURL: payload.ImageURL,
	}

	found, err := s.store.Update(c.Request().Context(), p)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to update product")
	}
	if !found {
		return fail(c, http.StatusNotFound, "product not found")
	}

	s.logger.Debug("updated product", zap.Int64("id", id))
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProducto(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	found, err := s.store.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to delete product")
	}
	if !found {
		return fail(c, http.StatusNotFound, "product not found")
	}

	s.logger.Debug("deleted product", zap.Int64("id", id))
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}
