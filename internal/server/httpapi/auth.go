package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Asad-NCS/lostandfound/internal/domain"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	domain.User
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Info(r.Context(), "user registered", "user_id", user.ID, "role", user.Role)
	s.writeMessage(w, http.StatusCreated, "User registered successfully!")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorMsg(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{User: *user, Token: token})
}
