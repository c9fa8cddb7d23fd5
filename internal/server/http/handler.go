package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileResponse is the only user representation that crosses the API
// boundary; the password hash never appears in it.
type profileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}

func (s *HTTPServer) RegisterUser(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, http.StatusBadRequest, "invalid request body", "register")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		if errors.Is(err, common.ErrorEmailAlreadyExists) || errors.Is(err, common.ErrorEmptyPassword) {
			s.writeError(r.Context(), w, http.StatusUnprocessableEntity, "registration error", "register")
			return
		}
		s.writeError(r.Context(), w, http.StatusInternalServerError, "internal error", "register")
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", user.Email)
	s.writeJSON(r.Context(), w, http.StatusOK, profileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func (s *HTTPServer) Login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, http.StatusBadRequest, "invalid request body", "login")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// same body for unknown email and wrong password
			s.writeError(r.Context(), w, http.StatusUnauthorized, "authorization error", "login")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		s.writeError(r.Context(), w, http.StatusInternalServerError, "internal error", "login")
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, loginResponse{AccessToken: token})
}

func (s *HTTPServer) Info(w http.ResponseWriter, r *http.Request) {

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, http.StatusUnauthorized, "authorization error", "info")
		return
	}

	user, err := s.users.Profile(r.Context(), principal.Email)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.writeError(r.Context(), w, http.StatusUnauthorized, "authorization error", "info")
			return
		}
		s.logger.Error(r.Context(), err.Error())
		s.writeError(r.Context(), w, http.StatusInternalServerError, "internal error", "info")
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, profileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func (s *HTTPServer) Ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- helpers below ---

func (s *HTTPServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "response encoding failed", "error", err.Error())
	}
}

func (s *HTTPServer) writeError(ctx context.Context, w http.ResponseWriter, status int, msg string, op string) {
	s.writeJSON(ctx, w, status, errorResponse{Error: msg, Context: op})
}
