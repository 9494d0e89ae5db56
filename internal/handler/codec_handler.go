package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Siddarth2230/hashlink/internal/models"
	"github.com/Siddarth2230/hashlink/internal/service"
	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

type CodecHandler struct {
	service *service.CodecService
}

func NewCodecHandler(svc *service.CodecService) *CodecHandler {
	return &CodecHandler{service: svc}
}

// POST /api/v1/hashids/encode
func (h *CodecHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var req models.EncodeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	resp, err := h.service.Encode(r.Context(), req)
	if err != nil {
		writeCodecError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/v1/hashids/decode
func (h *CodecHandler) Decode(w http.ResponseWriter, r *http.Request) {
	var req models.DecodeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	resp, err := h.service.Decode(r.Context(), req)
	if err != nil {
		writeCodecError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCodecError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAmbiguousRequest),
		errors.Is(err, hashids.ErrInvalidInputID),
		errors.Is(err, hashids.ErrEmptyHash),
		errors.Is(err, hashids.ErrNonHexString):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, hashids.ErrInvalidHash):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("codec error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
