package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/credits-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credits-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/credits-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credits-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  usecase.UserUseCase
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// ListUsers handles the GET /credits/users endpoint
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing users", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UsersToResponse(users))
}

// GetUser handles the GET /credits/users/:netid endpoint. The account is
// lazily created on first fetch of a valid member.
func (h *UserHandler) GetUser(c *gin.Context) {
	netid := c.Param("netid")

	user, err := h.users.GetOrCreateUser(c.Request.Context(), netid)
	if err != nil {
		if !errors.Is(err, domainerr.ErrNotMember) {
			h.logger.Error("Error fetching user", map[string]any{
				"netid": netid,
				"error": err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserToResponse(user))
}

// CreateUser handles the POST /credits/users/:netid endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	netid := c.Param("netid")

	user, err := h.users.CreateUser(c.Request.Context(), netid)
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error creating user", map[string]any{
				"netid": netid,
				"error": err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserToResponse(user))
}
