// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/service"
	"github.com/MKhiriev/go-keyplace/internal/utils"
	"github.com/MKhiriev/go-keyplace/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.services.CustodianService.Register(r.Context(), req.AccountID, req.Name, req.Keys)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", req.AccountID).Int("records", len(req.Keys)).Msg("account registered")

	setBearer(w, session)
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, match, err := h.services.CustodianService.Authenticate(r.Context(), req.AccountID, req.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setBearer(w, session)
	utils.WriteJSON(w, models.AuthResponse{Session: session, Match: match}, http.StatusOK)
}

func (h *Handler) setKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrSessionInvalid)
		return
	}

	var req models.SetKeysRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sig, err := crypto.ParseSignatureString(req.Signature)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: signature: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.services.CustodianService.SetKeys(ctx, token, req.Keys, sig); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recover(w http.ResponseWriter, r *http.Request) {
	var req models.RecoverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	match, err := h.services.CustodianService.Recover(r.Context(), req.AccountID, req.Attempts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, match, http.StatusOK)
}

// decodeJSON reads at most maxBodyBytes into dst. On failure it has already
// answered 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func setBearer(w http.ResponseWriter, session models.Session) {
	w.Header().Set("Authorization", "Bearer "+session.Token)
}
