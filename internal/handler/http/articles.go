package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/utils"
	"github.com/avolkov/inkwell/models"
)

// accountIDFromContext reads the account id the auth middleware stored. A
// missing id on an owner-scoped route means the route was wired without the
// auth middleware, which is a programming error answered with 401.
func accountIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
	}
	return accountID, ok
}

// articleIDFromURL parses the {articleID} route parameter.
func articleIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := accountIDFromContext(w, r)
	if !ok {
		return
	}

	var req models.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	created, err := h.services.ArticleService.Publish(ctx, ownerID, req)
	if err != nil {
		log.Err(err).Msg("publish failed")
		renderError(w, r, err)
		return
	}

	log.Info().Int64("article_id", created.ArticleID).Int64("owner_id", ownerID).Msg("article published")

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := accountIDFromContext(w, r)
	if !ok {
		return
	}

	articleID, err := articleIDFromURL(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	var req models.ArticleRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.ArticleService.Edit(ctx, ownerID, articleID, req)
	if err != nil {
		log.Err(err).Int64("article_id", articleID).Msg("edit failed")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, updated)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := accountIDFromContext(w, r)
	if !ok {
		return
	}

	articleID, err := articleIDFromURL(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	if err = h.services.ArticleService.Remove(ctx, ownerID, articleID); err != nil {
		log.Err(err).Int64("article_id", articleID).Msg("remove failed")
		renderError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

func (h *Handler) listOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := accountIDFromContext(w, r)
	if !ok {
		return
	}

	summaries, err := h.services.ArticleService.ListOwn(ctx, ownerID)
	if err != nil {
		log.Err(err).Msg("dashboard listing failed")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, summaries)
}

func (h *Handler) viewArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	articleID, err := articleIDFromURL(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := h.services.ArticleService.ViewPublic(ctx, articleID)
	if err != nil {
		log.Err(err).Int64("article_id", articleID).Msg("public view failed")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, article)
}

func (h *Handler) listByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	handle := chi.URLParam(r, "handle")

	articles, err := h.services.ArticleService.ListByAuthor(ctx, handle)
	if err != nil {
		log.Err(err).Msg("author listing failed")
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, articles)
}
