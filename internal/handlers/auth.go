package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
	"github.com/GargManasvini/mini-healthcare-platform/internal/dto"
	"github.com/GargManasvini/mini-healthcare-platform/internal/middleware"
	"github.com/GargManasvini/mini-healthcare-platform/internal/models"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
	"github.com/GargManasvini/mini-healthcare-platform/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users      store.UserStore
	issuer     *auth.TokenIssuer
	cookieTTL  int
	secureMode bool
	log        zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler instance. cookieTTL is the
// token cookie lifetime in seconds; secureMode marks the cookie Secure
// and should be set when serving over HTTPS.
func NewAuthHandler(users store.UserStore, issuer *auth.TokenIssuer, cookieTTL int, secureMode bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		issuer:     issuer,
		cookieTTL:  cookieTTL,
		secureMode: secureMode,
		log:        log,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account with name, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 201 {object} dto.SignupResponse "User created successfully"
// @Failure 400 {object} dto.Response "Missing fields or duplicate email"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "All the fields are required")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "All the fields are required")
		return
	}

	// Pre-check keeps the duplicate message deterministic; the unique
	// constraint still closes the check-then-insert race.
	if _, err := h.users.FindByEmail(r.Context(), req.Email); err == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User already Exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.log.Error().Err(err).Msg("signup: email lookup failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong. User can not created")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("signup: password hashing failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong. User can not created")
		return
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User already Exists")
			return
		}
		h.log.Error().Err(err).Msg("signup: user insert failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong. User can not created")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SignupResponse{
		Success: true,
		Message: "User created successfully",
		User:    user,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password, set the token cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.Response "Missing fields"
// @Failure 401 {object} dto.Response "Invalid password"
// @Failure 404 {object} dto.Response "User not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Both email and password are required")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Both email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Msg("login: email lookup failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid Password")
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("login: token issuance failed")
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieTTL,
		HttpOnly: true,
		Secure:   h.secureMode,
		SameSite: http.SameSiteStrictMode,
	})

	// Password hash is already excluded by the json:"-" tag on the model.
	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "login Successful",
		Token:   token,
		User:    user,
	})
}

// Logout clears the token cookie
// @Summary Logout user
// @Description Clear the session cookie; tokens are stateless so there is no server-side revocation
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.Response "Logout successful"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureMode,
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.Response{Success: true, Message: "Logout Successful!"})
}
