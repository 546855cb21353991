package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/supportclint/call-logs-backend/internal/ids"
	"github.com/supportclint/call-logs-backend/internal/models"
	"github.com/supportclint/call-logs-backend/internal/repository"
	"github.com/supportclint/call-logs-backend/internal/security"
)

// userResponse is every User field except the password hash. Phone and
// address are populated by the mock backend only.
type userResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CompanyName   string    `json:"companyName"`
	ContactNumber string    `json:"contactNumber"`
	AccountSID    *string   `json:"accountSid,omitempty"`
	AuthToken     *string   `json:"authToken,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          string(user.Role),
		CompanyName:   user.CompanyName,
		ContactNumber: user.ContactNumber,
		AccountSID:    user.AccountSID,
		AuthToken:     user.AuthToken,
		Phone:         user.Phone,
		Address:       user.Address,
		CreatedAt:     user.CreatedAt,
	}
}

func (h HandlerSet) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	c.JSON(http.StatusOK, resp)
}

type createUserRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=admin user"`
	CompanyName   string `json:"companyName"`
	ContactNumber string `json:"contactNumber"`
}

func (h HandlerSet) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, password and role are required"})
		return
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := models.User{
		ID:            ids.New(),
		Name:          req.Name,
		Email:         strings.TrimSpace(strings.ToLower(req.Email)),
		PasswordHash:  passwordHash,
		Role:          models.UserRole(req.Role),
		CompanyName:   req.CompanyName,
		ContactNumber: req.ContactNumber,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		h.log.Error().Err(err).Str("email", user.Email).Msg("create user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

type updateUserRequest struct {
	Name          *string `json:"name"`
	CompanyName   *string `json:"companyName"`
	ContactNumber *string `json:"contactNumber"`
	AccountSID    *string `json:"accountSid"`
	AuthToken     *string `json:"authToken"`
}

func (h HandlerSet) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), models.UserPatch{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		ContactNumber: req.ContactNumber,
		AccountSID:    req.AccountSID,
		AuthToken:     req.AuthToken,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.log.Error().Err(err).Str("user_id", c.Param("id")).Msg("update user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
