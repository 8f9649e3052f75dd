package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/crayonzgrim/free-coders-books/internal/httpx"
	"github.com/crayonzgrim/free-coders-books/internal/platform/crypto"
)

type HTTPHandler struct {
	service   *Service
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHTTPHandler(service *Service, jwtSecret string, tokenTTL time.Duration) *HTTPHandler {
	return &HTTPHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/users/register.
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	var details []httpx.ErrorDetail
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		details = append(details, httpx.ErrorDetail{Field: "email", Message: "must be a valid email address"})
	}
	if len(req.Username) < 3 {
		details = append(details, httpx.ErrorDetail{Field: "username", Message: "must be at least 3 characters"})
	}
	if len(req.Password) < 8 {
		details = append(details, httpx.ErrorDetail{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	u, err := h.service.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Email already registered", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, u)
}

// Login handles POST /api/users/login.
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	u, err := h.service.Authenticate(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	token, err := crypto.GenerateToken(h.jwtSecret, u.ID, h.tokenTTL)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"token": token,
		"user":  u,
	}, nil)
}

// Me handles GET /api/me.
func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	httpx.JSONSuccess(w, u, nil)
}
