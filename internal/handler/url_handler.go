package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/internal/service"
)

type URLHandler struct {
	service *service.URLService
}

func NewURLHandler(svc *service.URLService) *URLHandler {
	return &URLHandler{service: svc}
}

// POST /shorten
func (h *URLHandler) ShortenURL(w http.ResponseWriter, r *http.Request) {
	var req models.ShortenRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	resp, err := h.service.ShortenURL(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidExpiry):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCollision):
			writeError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("ShortenURL error: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// GET /{shortCode} - redirect to long URL
func (h *URLHandler) RedirectURL(w http.ResponseWriter, r *http.Request) {
	shortCode := mux.Vars(r)["shortCode"]
	if shortCode == "" {
		writeError(w, http.StatusBadRequest, "missing short code")
		return
	}

	longURL, err := h.service.GetLongURL(r.Context(), shortCode)
	if err != nil {
		h.writeLookupError(w, "RedirectURL", err)
		return
	}

	http.Redirect(w, r, longURL, http.StatusFound)
}

// DELETE /{shortCode}
func (h *URLHandler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	shortCode := mux.Vars(r)["shortCode"]
	if shortCode == "" {
		writeError(w, http.StatusBadRequest, "missing short code")
		return
	}

	if err := h.service.DeleteShortCode(r.Context(), shortCode); err != nil {
		h.writeLookupError(w, "DeleteURL", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *URLHandler) writeLookupError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "short code not found")
	case errors.Is(err, service.ErrExpired):
		writeError(w, http.StatusGone, "short URL expired")
	default:
		log.Printf("%s error: %v", op, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// helper: write JSON response
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

// helper: write an error message in JSON form { "error": "msg" }
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
