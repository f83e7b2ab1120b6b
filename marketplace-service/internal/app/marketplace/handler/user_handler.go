package handler

import (
	"net/http"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserServiceInterface
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Upsert - POST /users. 201 с результатом вставки для нового email, 200 с результатом обновления для известного
func (h *UserHandler) Upsert(c *gin.Context) {
	var req entity.UpsertUserRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.userService.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result.Created {
		c.JSON(http.StatusCreated, result.Insert)
		return
	}
	c.JSON(http.StatusOK, result.Update)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req entity.UpdateRoleRequest
	if !bindAndValidate(c, h.validator, &req) {
		return
	}

	result, err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), req.NewRole)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
