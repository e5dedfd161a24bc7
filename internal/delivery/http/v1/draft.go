package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Raimguhinov/morrow-go/internal/models"
	"github.com/Raimguhinov/morrow-go/pkg/logger"
)

type beginDraftRequest struct {
	FromID string `json:"fromId"`
}

// beginDraft opens the editing draft: a copy of an existing alarm when
// fromId is given, a fresh default alarm otherwise. Any previous draft is
// replaced.
func (h *Handler) beginDraft(w http.ResponseWriter, r *http.Request) {
	var req beginDraftRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var draft models.Alarm
	if req.FromID != "" {
		alarm, ok := h.alarms.Get(req.FromID)
		if !ok {
			h.respondError(w, http.StatusNotFound, "alarm not found")
			return
		}
		draft = alarm
	} else {
		draft = models.NewDefaultAlarm(time.Now())
	}

	h.drafts.SetDraft(draft)
	h.respond(w, http.StatusOK, draft)
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.drafts.Draft()
	if !ok {
		h.respondError(w, http.StatusNotFound, "no draft in progress")
		return
	}
	h.respond(w, http.StatusOK, draft)
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.drafts.Draft()
	if !ok {
		h.respondError(w, http.StatusNotFound, "no draft in progress")
		return
	}

	patch, err := decodePatch(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if patch == nil {
		h.respondError(w, http.StatusBadRequest, "request body is required")
		return
	}

	if err := validatePatch(draft, *patch); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.drafts.UpdateDraft(*patch)

	draft, _ = h.drafts.Draft()
	h.respond(w, http.StatusOK, draft)
}

func (h *Handler) discardDraft(w http.ResponseWriter, r *http.Request) {
	h.drafts.ClearDraft()
	h.respond(w, http.StatusNoContent, nil)
}

// commitDraft saves the draft into the canonical collection: an update when
// the draft came from an existing alarm, a create otherwise. The draft is
// cleared on success.
func (h *Handler) commitDraft(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.drafts.Draft()
	if !ok {
		h.respondError(w, http.StatusNotFound, "no draft in progress")
		return
	}

	saved := draft
	patch := draft.AsPatch()

	if _, exists := h.alarms.Get(draft.ID); draft.ID != "" && exists {
		if err := h.alarms.Update(r.Context(), draft.ID, patch); err != nil {
			h.logger.Error("http - v1 - commitDraft", logger.Err(err))
			h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
			return
		}
	} else {
		created, err := h.alarms.Add(r.Context(), &patch)
		if err != nil {
			h.logger.Error("http - v1 - commitDraft", logger.Err(err))
			h.respondError(w, http.StatusInternalServerError, "failed to persist alarm")
			return
		}
		saved = created
	}

	h.drafts.ClearDraft()
	h.respond(w, http.StatusOK, saved)
}
