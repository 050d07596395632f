package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amberpalace/hotel-booking/internal/catalog"
)

// CatalogHandler serves the read-only package and add-on listings the
// booking form is built from.
type CatalogHandler struct {
	Cat *catalog.Catalog
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	if cat == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Cat: cat}
}

// ListPackages handles GET /v1/packages.
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Cat.Packages})
}

// ListAddOns handles GET /v1/addons.
func (h *CatalogHandler) ListAddOns(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Cat.AddOns})
}
