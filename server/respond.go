package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

var errBodyTooLarge = errors.New("request body too large")

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type loginErrorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("boardAuth: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Success: false, Error: msg})
}

// readBody reads at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	return body, nil
}

// decodeBody reads and decodes a JSON object body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v any) (int, string) {
	body, err := readBody(w, r, limit)
	if errors.Is(err, errBodyTooLarge) {
		return http.StatusRequestEntityTooLarge, "Request body too large"
	}
	if err != nil {
		return http.StatusBadRequest, "Invalid request"
	}
	if err := json.Unmarshal(body, v); err != nil {
		return http.StatusBadRequest, "Invalid request"
	}
	return 0, ""
}
