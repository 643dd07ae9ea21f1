package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/service"
)

// BankHandler handles the standalone question bank endpoints
type BankHandler struct {
	bankSvc *service.BankService
}

// NewBankHandler creates a new question bank handler
func NewBankHandler(bankSvc *service.BankService) *BankHandler {
	return &BankHandler{bankSvc: bankSvc}
}

// Create handles POST /api/questions
func (h *BankHandler) Create(w http.ResponseWriter, r *http.Request) {
	var q model.BankQuestion
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.bankSvc.Add(r.Context(), &q); err != nil {
		log.Printf("add bank question: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to add question")
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

// List handles GET /api/questions
func (h *BankHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.bankSvc.List(r.Context())
	if err != nil {
		log.Printf("list bank questions: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch questions")
		return
	}

	writeJSON(w, http.StatusOK, questions)
}
