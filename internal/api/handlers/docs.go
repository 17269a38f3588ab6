package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flashnote-app/flashnote/internal/api/middleware"
	"github.com/flashnote-app/flashnote/internal/repositories"
	"github.com/flashnote-app/flashnote/internal/utils"
)

// EditTokenHeader carries the shared edit credential on writes by
// non-owners.
const EditTokenHeader = "X-Edit-Token"

// DocHandler serves document CRUD and edit-token sharing.
type DocHandler struct {
	docs repositories.DocumentRepository
}

// NewDocHandler creates a DocHandler.
func NewDocHandler(docs repositories.DocumentRepository) *DocHandler {
	return &DocHandler{docs: docs}
}

// Create godoc
// @Summary Create a document
// @Description Creates a document owned by the caller, with a fresh random slug and optional initial content.
// @Tags Docs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body object{content=string} false "Optional initial content"
// @Success 201 {object} map[string]any
// @Failure 401 {object} utils.ErrorBody
// @Router /api/docs [post]
func (h *DocHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "Not authorized.")
		return
	}

	// Body is optional; content defaults to the empty string.
	var input struct {
		Content string `json:"content"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&input)
	}

	doc, err := h.docs.Create(r.Context(), user.ID, input.Content)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message":  "Document created successfully.",
		"slug":     doc.Slug,
		"document": doc,
	})
}

// List godoc
// @Summary List own documents
// @Description Returns the caller's documents as {slug, updatedAt} pairs, most recently updated first.
// @Tags Docs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DocumentSummary
// @Failure 401 {object} utils.ErrorBody
// @Router /api/docs [get]
func (h *DocHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "Not authorized.")
		return
	}

	docs, err := h.docs.ListByOwner(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, docs)
}

// GetBySlug godoc
// @Summary Read a document
// @Description Returns the content for a slug. Public: anyone holding the slug can read.
// @Tags Docs
// @Produce json
// @Param slug path string true "Document slug"
// @Success 200 {object} map[string]any
// @Failure 404 {object} utils.ErrorBody
// @Router /api/docs/{slug} [get]
func (h *DocHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	doc, err := h.docs.FindBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, err)
		return
	}

	// Owner id and edit token are not exposed on public reads.
	utils.JSON(w, http.StatusOK, map[string]any{
		"slug":      doc.Slug,
		"content":   doc.Content,
		"updatedAt": doc.UpdatedAt,
	})
}

// Update godoc
// @Summary Update a document
// @Description Overwrites the content. Allowed for the owner, or for any caller presenting the document's edit token in X-Edit-Token. Last write wins.
// @Tags Docs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Document slug"
// @Param X-Edit-Token header string false "Shared edit token"
// @Param input body object{content=string} true "New content"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/docs/{slug} [put]
func (h *DocHandler) Update(w http.ResponseWriter, r *http.Request) {
	// Explicit empty content is a valid update; a missing field is not.
	var input struct {
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Content == nil {
		utils.Error(w, http.StatusBadRequest, `The "content" field is required.`)
		return
	}

	var requesterID uint
	if user := middleware.UserFrom(r.Context()); user != nil {
		requesterID = user.ID
	}

	doc, err := h.docs.UpdateContent(r.Context(), r.PathValue("slug"), *input.Content, requesterID, r.Header.Get(EditTokenHeader))
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Document updated successfully.",
		"slug":      doc.Slug,
		"updatedAt": doc.UpdatedAt,
	})
}

// EditToken godoc
// @Summary Get or create the edit token
// @Description Returns the document's shared edit token, generating it on first call. Owner only; the token is stable once created.
// @Tags Docs
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Document slug"
// @Success 200 {object} map[string]any
// @Failure 401 {object} utils.ErrorBody
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/docs/{slug}/edit-token [post]
func (h *DocHandler) EditToken(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "Not authorized.")
		return
	}

	doc, err := h.docs.EnsureEditToken(r.Context(), r.PathValue("slug"), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message":   "Edit token retrieved successfully.",
		"slug":      doc.Slug,
		"editToken": doc.EditToken,
	})
}

// Delete godoc
// @Summary Delete a document
// @Description Hard-deletes the document. Owner only.
// @Tags Docs
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Document slug"
// @Success 200 {object} map[string]any
// @Failure 401 {object} utils.ErrorBody
// @Failure 403 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /api/docs/{slug} [delete]
func (h *DocHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "Not authorized.")
		return
	}

	if err := h.docs.DeleteBySlug(r.Context(), r.PathValue("slug"), user.ID); err != nil {
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"message": "Document deleted successfully.",
	})
}
