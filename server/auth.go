package server

import (
	"errors"
	"log"
	"net/http"

	boardAuth "github.com/MrEthical07/boardAuth"
)

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r, s.maxBody)
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, loginErrorBody{Error: "Request body too large"})
		return
	}
	if err != nil {
		body = nil
	}

	res, err := s.engine.LoginJSON(r.Context(), boardAuth.ClientIDFromRequest(r), body)
	if err != nil {
		status, msg := loginError(err)
		writeJSON(w, status, loginErrorBody{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn.Milliseconds(),
	})
}

func loginError(err error) (int, string) {
	switch {
	case errors.Is(err, boardAuth.ErrLoginRateLimited):
		return http.StatusTooManyRequests, "Too many attempts. Try again in 15 minutes."
	case errors.Is(err, boardAuth.ErrPasswordRequired):
		return http.StatusBadRequest, "Password required"
	case errors.Is(err, boardAuth.ErrInvalidPassword):
		return http.StatusUnauthorized, "Invalid password"
	case errors.Is(err, boardAuth.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	default:
		log.Printf("boardAuth: login failed: %v", err)
		return http.StatusInternalServerError, "Login failed"
	}
}
