package handlers

import (
	"storefront/internal/apperror"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	productTitle       = validation.Field{Name: "title", Kind: validation.String, Required: true, Rules: "min=5,max=100"}
	productDescription = validation.Field{Name: "description", Kind: validation.String, Rules: "min=5,max=500"}
	productPrice       = validation.Field{Name: "price", Kind: validation.Number, Required: true, Rules: "min=0",
		Messages: map[string]string{"min": "Price must be greater than 0"}}

	createProductSchema = validation.NewSchema(productTitle, productDescription, productPrice)
	updateProductSchema = validation.NewSchema(optional(productTitle), productDescription, optional(productPrice))
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	log     *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", validation.Body(createProductSchema), h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", validation.Body(updateProductSchema), h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns every product.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleCreateProduct stores a product from a validated body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	body := validation.FromCtx(c)
	title, _ := body.String("title")
	description, _ := body.String("description")
	price, _ := body.Float("price")

	product, err := h.service.CreateProduct(c.UserContext(), services.CreateProductInput{
		Title:       title,
		Description: description,
		Price:       price,
	})
	if err != nil {
		return err
	}
	h.log.WithField("product_id", product.ID).Debug("product created")
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProductByID returns one product. The id must be numeric.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := strictID(c)
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgProductNotFound)
	}
	body := validation.FromCtx(c)
	product, err := h.service.UpdateProduct(c.UserContext(), id, services.UpdateProductInput{
		Title:       body.StringPtr("title"),
		Description: body.StringPtr("description"),
		Price:       body.FloatPtr("price"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": services.MsgProductUpdated,
		"product": product,
	})
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgProductNotFound)
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": services.MsgProductDeleted,
	})
}

// optional returns a copy of f that may be omitted.
func optional(f validation.Field) validation.Field {
	f.Required = false
	return f
}
