package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/service"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{formSvc: formSvc}
}

// CreateFormRequest is the request body for creating a form
type CreateFormRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	HeaderImageURL string           `json:"headerImageUrl"`
	Questions      []model.Question `json:"questions"`
}

// CreateFormResponse returns the three identifiers for a new form
type CreateFormResponse struct {
	FormID   string `json:"formId"`
	EditKey  string `json:"editKey"`
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
}

// Create handles POST /api/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form := &model.Form{
		Title:          req.Title,
		Description:    req.Description,
		HeaderImageURL: req.HeaderImageURL,
		Questions:      req.Questions,
	}

	created, err := h.formSvc.Create(r.Context(), form)
	if err != nil {
		log.Printf("create form: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create form")
		return
	}

	writeJSON(w, http.StatusCreated, CreateFormResponse{
		FormID:   created.FormID,
		EditKey:  created.EditKey,
		ShareID:  created.ShareID,
		ShareURL: h.formSvc.ShareURL(created.ShareID),
	})
}

// Get handles GET /api/forms/{formId}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.formSvc.GetByFormID(r.Context(), formID)
	if err != nil {
		log.Printf("fetch form %s: %v", formID, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch form")
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// GetByShareID handles GET /api/forms/respond/{shareId}
func (h *FormHandler) GetByShareID(w http.ResponseWriter, r *http.Request) {
	shareID := mux.Vars(r)["shareId"]

	form, err := h.formSvc.GetByShareID(r.Context(), shareID)
	if err != nil {
		log.Printf("fetch form by share id %s: %v", shareID, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch form")
		return
	}
	if form == nil {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}

	writeJSON(w, http.StatusOK, form)
}

// Update handles PUT /api/forms/{formId}?key=editKey
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]
	editKey := r.URL.Query().Get("key")

	var patch model.FormPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.formSvc.Update(r.Context(), formID, editKey, &patch)
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrForbidden) {
		// An unknown formId and a wrong key both read as forbidden so the
		// response does not reveal whether the form exists.
		writeError(w, http.StatusForbidden, "invalid edit key")
		return
	}
	if err != nil {
		log.Printf("update form %s: %v", formID, err)
		writeError(w, http.StatusInternalServerError, "failed to edit form")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
