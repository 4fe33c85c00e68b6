package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	registered, err := h.services.AuthService.SignUp(ctx, creds)
	if err != nil {
		log.Err(err).Msg("signup failed")
		renderError(w, r, err)
		return
	}

	log.Info().Int64("account_id", registered.AccountID).Str("handle", registered.Handle).Msg("account created")

	// Log the fresh account straight in so the client does not need a
	// second round trip.
	_, token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("post-signup login failed")
		renderError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, models.SessionResponse{Token: token.SignedString, Handle: registered.Handle})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	account, token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("login failed")
		renderError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.AccountID).Msg("account logged in")

	h.setSessionCookie(w, token)
	render.JSON(w, r, models.SessionResponse{Token: token.SignedString, Handle: account.Handle})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := sessionTokenFromRequest(r)
	if err != nil {
		// auth middleware already validated the token, this cannot happen
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	if err = h.services.AuthService.Logout(ctx, tokenString); err != nil {
		log.Err(err).Msg("logout failed")
		renderError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	render.NoContent(w, r)
}

// setSessionCookie delivers the session token to browser clients. HttpOnly
// keeps it away from scripts; the max age matches the server-side session
// expiry.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.authCfg.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
