package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/application/service"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/booth-pos/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing the catalog
func (h *ProductHandler) List(c *gin.Context) {
	response.OK(c, "Products retrieved successfully", h.productService.List(c.Request.Context()))
}

// Create handles adding a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.Add(c.Request.Context(), service.ProductInput{
		Name:  req.Name,
		Price: *req.Price,
		Image: req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles editing the product named in the path
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("name"), service.ProductInput{
		Name:  req.Name,
		Price: *req.Price,
		Image: req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles removing a product by name
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// Export downloads the catalog as an Excel workbook
func (h *ProductHandler) Export(c *gin.Context) {
	data, err := h.productService.ExportXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "products-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
