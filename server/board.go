package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/MrEthical07/boardAuth/board"
)

type boardResponse struct {
	Columns []board.Column `json:"columns"`
}

type replaceRequest struct {
	Columns []board.Column `json:"columns"`
}

type addRequest struct {
	Task   *board.Task `json:"task"`
	Column string      `json:"column"`
}

type moveRequest struct {
	TaskID   string `json:"taskId"`
	ToColumn string `json:"toColumn"`
}

type updateRequest struct {
	TaskID  string                     `json:"taskId"`
	Updates map[string]json.RawMessage `json:"updates"`
}

type writeResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"taskId,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	columns, err := s.boards.Get(r.Context())
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResponse{Columns: columns})
}

func (s *Server) handleReplaceBoard(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if status, msg := decodeBody(w, r, s.maxBody, &req); status != 0 {
		writeError(w, status, msg)
		return
	}
	if err := s.boards.Replace(r.Context(), req.Columns); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, writeResponse{Success: true})
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if status, msg := decodeBody(w, r, s.maxBody, &req); status != 0 {
		writeError(w, status, msg)
		return
	}

	column := req.Column
	if column == "" {
		column = board.ColumnBacklog
	}
	task, err := s.boards.AddTask(r.Context(), req.Task, column)
	if err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, writeResponse{
		Success: true,
		TaskID:  task.ID,
		Message: fmt.Sprintf("Added %s to %s", task.Title, column),
	})
}

func (s *Server) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if status, msg := decodeBody(w, r, s.maxBody, &req); status != 0 {
		writeError(w, status, msg)
		return
	}
	if _, err := s.boards.MoveTask(r.Context(), req.TaskID, req.ToColumn); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, writeResponse{
		Success: true,
		Message: fmt.Sprintf("Moved %s to %s", req.TaskID, req.ToColumn),
	})
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if status, msg := decodeBody(w, r, s.maxBody, &req); status != 0 {
		writeError(w, status, msg)
		return
	}
	if _, err := s.boards.UpdateTask(r.Context(), req.TaskID, req.Updates); err != nil {
		s.writeBoardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, writeResponse{
		Success: true,
		Message: fmt.Sprintf("Updated %s", req.TaskID),
	})
}

func (s *Server) writeBoardError(w http.ResponseWriter, r *http.Request, err error) {
	var boardErr *board.Error
	if errors.As(err, &boardErr) {
		switch {
		case errors.Is(err, board.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, boardErr.Msg)
			return
		case errors.Is(err, board.ErrNotFound):
			writeError(w, http.StatusNotFound, boardErr.Msg)
			return
		case errors.Is(err, board.ErrConflict):
			writeError(w, http.StatusConflict, boardErr.Msg)
			return
		}
	}

	log.Printf("boardAuth: %s %s: %v", r.Method, r.URL.Path, err)
	if r.Method == http.MethodGet {
		writeError(w, http.StatusInternalServerError, "Failed to fetch board")
		return
	}
	writeError(w, http.StatusInternalServerError, "Database write failed")
}
