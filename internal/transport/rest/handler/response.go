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

// ResponseHandler handles response submission and listing endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitResponseRequest is the request body for submitting a response
type SubmitResponseRequest struct {
	Answers []model.Answer `json:"answers"`
}

// Submit handles POST /api/responses/{formId}
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.responseSvc.Submit(r.Context(), formID, req.Answers); err != nil {
		log.Printf("submit response for form %s: %v", formID, err)
		writeError(w, http.StatusInternalServerError, "failed to submit response")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// SubmitByShare handles POST /api/responses/share/{shareId}
func (h *ResponseHandler) SubmitByShare(w http.ResponseWriter, r *http.Request) {
	shareID := mux.Vars(r)["shareId"]

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.responseSvc.SubmitByShareID(r.Context(), shareID, req.Answers)
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "form not found")
		return
	}
	if err != nil {
		log.Printf("submit response for share %s: %v", shareID, err)
		writeError(w, http.StatusInternalServerError, "failed to submit response")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// List handles GET /api/responses/{formId}
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	responses, err := h.responseSvc.ListByFormID(r.Context(), formID)
	if err != nil {
		log.Printf("list responses for form %s: %v", formID, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch responses")
		return
	}

	writeJSON(w, http.StatusOK, responses)
}
