// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/civic-vote/kv"
	"github.com/danielhkuo/civic-vote/middleware"
	"github.com/danielhkuo/civic-vote/models"
	"github.com/danielhkuo/civic-vote/session"
)

// DocumentField is the multipart field carrying an identity document
const DocumentField = "document"

// maxUploadBytes bounds the whole multipart body, leaving room for headers
const maxUploadBytes = kv.DefaultMaxDocumentSize + 1<<20

type AccountHandler struct {
	session *session.Session
}

func NewAccountHandler(sess *session.Session) *AccountHandler {
	return &AccountHandler{session: sess}
}

// Register handles POST /account/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.session.Register(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, profile)
}

// Login handles POST /account/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	profile, err := h.session.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// LoginWithProvider handles POST /account/login/{provider}
func (h *AccountHandler) LoginWithProvider(w http.ResponseWriter, r *http.Request) {
	profile, err := h.session.LoginWithProvider(r.Context(), r.PathValue("provider"))
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// Logout handles POST /account/logout
// Always succeeds once the local session is gone
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Logged out",
	})
}

// GetMe handles GET /account/me
// Returns the current profile
func (h *AccountHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.session.Current()
	if !ok {
		middleware.WriteError(w, models.ErrNotAuthenticated)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// UpdateProfile handles PATCH /account/profile
// Only the fields present in the body are changed
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileUpdate
	if err := middleware.ParseJSONBody(r, &upd); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.session.UpdateProfile(r.Context(), upd)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// SubmitVerification handles POST /account/verify
// Expects a multipart form with the document in the "document" field
func (h *AccountHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile(DocumentField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "document is too large")
		case errors.Is(err, http.ErrMissingFile):
			middleware.ErrorResponse(w, http.StatusBadRequest, "document is required")
		default:
			slog.Warn("failed to read verification upload", "error", err)
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		}
		return
	}
	defer file.Close()

	profile, err := h.session.SubmitIdentityVerification(r.Context(), models.Document{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// ConfirmVote handles POST /account/votes
func (h *AccountHandler) ConfirmVote(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.session.ConfirmVote(r.Context(), req.ElectionID, req.CandidateID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, profile)
}

// RequestPasswordReset handles POST /account/password-reset
func (h *AccountHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.session.RequestPasswordReset(r.Context(), req.Email); err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, models.MessageResponse{
		Message: "Password reset instructions sent",
	})
}
