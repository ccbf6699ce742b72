package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"

	"pos-kasir/libs"
	"pos-kasir/models"
	"pos-kasir/repositories"
	"pos-kasir/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	store      repositories.Store
	cloudinary *libs.CloudinaryService
}

// NewProductController wires the catalog CRUD. cloudinary may be nil;
// products then fall back to the placeholder image.
func NewProductController(store repositories.Store, cloudinary *libs.CloudinaryService) *ProductController {
	return &ProductController{store: store, cloudinary: cloudinary}
}

// GetAllProducts godoc
// @Summary List products
// @Description Get all active products
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.store.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Products retrieved", Data: products})
}

// GetCategories godoc
// @Summary List categories
// @Description Get the fixed product category set
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: models.ProductCategories})
}

// GetProductByID godoc
// @Summary Get product
// @Description Get a single product by id
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	product, err := ctrl.store.FindProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}
	if product == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a product from the catalog form, with optional image upload
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param category formData string true "Category"
// @Param price formData int true "Price"
// @Param description formData string false "Description"
// @Param stock formData int false "Stock"
// @Param image formData file false "Image file (jpg/png/webp, max 5MB)"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Code:    models.CodeValidationError,
		})
		return
	}

	ok, fieldErrors := utils.ValidateForm(map[string]string{
		"name":     req.Name,
		"price":    req.Price,
		"category": req.Category,
		"stock":    req.Stock,
	}, utils.ProductSchema())
	if !ok {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Code:    models.CodeValidationError,
			Errors:  fieldErrors,
		})
		return
	}

	price, _ := strconv.Atoi(req.Price)
	stock, _ := strconv.Atoi(req.Stock)

	image := req.Image
	if file, err := c.FormFile("image"); err == nil {
		uploaded, uploadErr := ctrl.uploadImage(c, file)
		if uploadErr != nil {
			// Upload failure aborts the submission but loses nothing;
			// the form can retry as-is.
			c.JSON(400, models.ErrorResponse{
				Success: false,
				Message: uploadErr.Error(),
				Code:    models.CodeUploadFailure,
			})
			return
		}
		image = uploaded
	}
	if image == "" {
		image = models.PlaceholderImage
	}

	product, err := ctrl.store.AddProduct(c.Request.Context(), &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Image:       image,
		Description: req.Description,
		Stock:       stock,
	})
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Product created", Data: product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Merge a partial update into an existing product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.ProductPatch true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Code:    models.CodeValidationError,
		})
		return
	}

	if patch.Name != nil {
		if msg := utils.ValidateField(*patch.Name, utils.Required, utils.MaxLength(100)); msg != "" {
			c.JSON(400, models.ErrorResponse{
				Success: false,
				Message: "Validation failed",
				Code:    models.CodeValidationError,
				Errors:  gin.H{"name": msg},
			})
			return
		}
	}
	if patch.Category != nil && !models.IsValidCategory(*patch.Category) {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Code:    models.CodeValidationError,
			Errors:  gin.H{"category": "Invalid value"},
		})
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Code:    models.CodeValidationError,
			Errors:  gin.H{"price": "Invalid price"},
		})
		return
	}

	product, err := ctrl.store.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}
	if product == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product updated", Data: product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Remove a product (soft delete on the remote backend)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	deleted, err := ctrl.store.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}
	if !deleted {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product deleted"})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload an image and get back its durable URL, for use when creating or editing a product
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (jpg/png/webp, max 5MB)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Image file is required",
			Code:    models.CodeValidationError,
		})
		return
	}

	url, err := ctrl.uploadImage(c, file)
	if err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeUploadFailure,
		})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Image uploaded", Data: gin.H{"url": url}})
}

// uploadImage pushes the form file to the image host and returns its
// durable URL.
func (ctrl *ProductController) uploadImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if ctrl.cloudinary == nil {
		return "", errors.New("image upload is not configured")
	}
	if err := ctrl.cloudinary.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	url, _, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename)
	return url, err
}
