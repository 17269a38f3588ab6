package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flashnote-app/flashnote/internal/api/middleware"
	"github.com/flashnote-app/flashnote/internal/api/services"
	"github.com/flashnote-app/flashnote/internal/repositories"
	"github.com/flashnote-app/flashnote/internal/utils"
)

// AuthHandler serves registration, login and whoami.
type AuthHandler struct {
	users  repositories.UserRepository
	tokens services.TokenService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users repositories.UserRepository, tokens services.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account from an email and a password of at least 6 characters.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body credentialsInput true "Email and password"
// @Success 201 {object} map[string]any
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input.")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	user, err := h.users.Register(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully.",
		"user":    user,
	})
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns a signed bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body credentialsInput true "Email and password"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input.")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Please provide email and password.")
		return
	}

	user, err := h.users.VerifyCredentials(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful.",
		"token":   token,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// Me godoc
// @Summary Current user
// @Description Returns the user the bearer token resolves to.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorBody
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "Not authorized.")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
