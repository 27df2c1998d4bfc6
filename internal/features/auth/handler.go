package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/token"
)

// HouseholdService creates the household a registering admin will own,
// implemented by the households feature and injected at route registration.
type HouseholdService interface {
	CreateHousehold(ctx context.Context, name string) (string, error)
	SetOwner(ctx context.Context, householdID, ownerID string) error
}

type Handler struct {
	repo       *Repository
	households HouseholdService
}

func NewHandler(repo *Repository, households HouseholdService) *Handler {
	return &Handler{repo: repo, households: households}
}

// Register godoc
// @Summary Register a new household
// @Description Creates a household and its admin member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to check existing users")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered")
		return
	}

	householdID, err := h.households.CreateHousehold(c.Request.Context(), req.HouseholdName)
	if err != nil {
		response.DatabaseError(c, "Failed to create household")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		HouseholdID: householdID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Role:        "admin",
		Status:      "active",
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		response.DatabaseError(c, "Failed to create user")
		return
	}

	if err := h.households.SetOwner(c.Request.Context(), householdID, user.ID.Hex()); err != nil {
		response.DatabaseError(c, "Failed to link household owner")
		return
	}

	sessionToken, err := token.GenerateSession(user.ID.Hex(), householdID, user.Email, user.Role)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Created(c, AuthResponse{Token: sessionToken, User: user})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}
	if user == nil || user.Status != "active" {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	sessionToken, err := token.GenerateSession(user.ID.Hex(), user.HouseholdID, user.Email, user.Role)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{Token: sessionToken, User: user})
}

// Me godoc
// @Summary Get the authenticated member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.repo.FindByID(c.Request.Context(), c.GetString("userID"))
	if err != nil || user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}
