package v1

import (
	"encoding/json"
	"net/http"

	"github.com/Raimguhinov/morrow-go/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respond(w http.ResponseWriter, code int, payload any) {
	if payload == nil {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("http - v1 - respond", logger.Err(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, code int, msg string) {
	h.respond(w, code, errorResponse{Error: msg})
}
