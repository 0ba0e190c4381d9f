package handlers

import (
	"storefront/internal/apperror"
	"storefront/internal/services"
	"storefront/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	userUsername = validation.Field{Name: "username", Kind: validation.String, Required: true, Rules: "min=3,max=50"}
	userEmail    = validation.Field{Name: "email", Kind: validation.String, Required: true, Rules: "email"}
	userPassword = validation.Field{Name: "password", Kind: validation.String, Required: true, Rules: "min=8",
		Messages: map[string]string{"min": "Password must be at least 8 characters"}}

	registerSchema   = validation.NewSchema(userUsername, userEmail, userPassword)
	updateUserSchema = validation.NewSchema(optional(userUsername), optional(userEmail), optional(userPassword))
	loginSchema      = validation.NewSchema(
		userEmail,
		validation.Field{Name: "password", Kind: validation.String, Required: true},
	)
)

// UserHandler handles HTTP requests for users, including registration and login.
type UserHandler struct {
	service *services.UserService
	log     *logrus.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/register", validation.Body(registerSchema), h.HandleRegister)
	userRoutes.Post("/login", validation.Body(loginSchema), h.HandleLogin)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", validation.Body(updateUserSchema), h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleRegister handles new user registration. The password hash is never
// part of the response.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	body := validation.FromCtx(c)
	username, _ := body.String("username")
	email, _ := body.String("email")
	password, _ := body.String("password")

	user, err := h.service.Register(c.UserContext(), services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			h.log.WithField("email", email).Info("registration rejected: email taken")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin checks credentials and issues a JWT.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	body := validation.FromCtx(c)
	email, _ := body.String("email")
	password, _ := body.String("password")

	token, err := h.service.Login(c.UserContext(), email, password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := strictID(c)
	if err != nil {
		return err
	}
	user, err := h.service.GetUserByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgUserNotFound)
	}
	body := validation.FromCtx(c)
	user, err := h.service.UpdateUser(c.UserContext(), id, services.UpdateUserInput{
		Username: body.StringPtr("username"),
		Email:    body.StringPtr("email"),
		Password: body.StringPtr("password"),
	})
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := looseID(c)
	if !ok {
		return apperror.NotFound(services.MsgUserNotFound)
	}
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": services.MsgUserDeleted,
	})
}
