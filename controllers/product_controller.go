package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// GetAllProducts godoc
// @Summary List products
// @Description List the catalog. With page and size both set, returns that page; otherwise the full collection.
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	pageParam := c.Query("page")
	sizeParam := c.Query("size")

	// Paged only when both params are set; anything less means the full
	// collection.
	if pageParam == "" || sizeParam == "" {
		products, err := ctrl.products.GetAllProducts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: products})
		return
	}

	page, _ := strconv.Atoi(pageParam)
	size, _ := strconv.Atoi(sizeParam)

	products, meta, err := ctrl.products.GetProductsPage(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta:    meta,
	})
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductByCode godoc
// @Summary Get product by code
// @Tags Products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/code/{code} [get]
func (ctrl *ProductController) GetProductByCode(c *gin.Context) {
	product, err := ctrl.products.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductsByCategory godoc
// @Summary List products in a category
// @Tags Products
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} models.Response
// @Router /products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	products, err := ctrl.products.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// GetProductsByInventoryStatus godoc
// @Summary List products by inventory status
// @Tags Products
// @Produce json
// @Param status path string true "Inventory status" Enums(INSTOCK, LOWSTOCK, OUTOFSTOCK)
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products/status/{status} [get]
func (ctrl *ProductController) GetProductsByInventoryStatus(c *gin.Context) {
	status := models.InventoryStatus(c.Param("status"))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid inventory status"})
		return
	}

	products, err := ctrl.products.GetProductsByInventoryStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a catalog entry (admin only)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := ctrl.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags Admin - Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := ctrl.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
