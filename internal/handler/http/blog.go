package http

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BlogHandler обработчик статей блога. HTML очищается в service.BlogService.
type BlogHandler struct {
	blog      *service.BlogService
	validator *Validator
	log       *zap.Logger
}

// NewBlogHandler создает обработчик блога
func NewBlogHandler(blog *service.BlogService, validator *Validator, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		blog:      blog,
		validator: validator,
		log:       log,
	}
}

// ListPublished возвращает опубликованные статьи
//
//	@Summary	List published blog posts
//	@Tags		Blog
//	@Produce	json
//	@Success	200	{array}	domain.BlogPost
//	@Router		/api/blog [get]
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListAll возвращает все статьи, включая черновики
//
//	@Summary	List all blog posts
//	@Tags		Blog
//	@Produce	json
//	@Security	AdminKey
//	@Success	200	{array}	domain.BlogPost
//	@Router		/api/blog/all [get]
func (h *BlogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *BlogHandler) list(w http.ResponseWriter, r *http.Request, includeDrafts bool) {
	posts, err := h.blog.List(r.Context(), includeDrafts)
	if err != nil {
		writeStoreError(w, h.log, err, "Blog post not found")
		return
	}
	writeJSON(w, posts, http.StatusOK)
}

// GetBySlug возвращает опубликованную статью
//
//	@Summary	Get blog post by slug
//	@Tags		Blog
//	@Produce	json
//	@Param		slug	path		string	true	"Post slug"
//	@Success	200		{object}	domain.BlogPost
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.GetPublished(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeStoreError(w, h.log, err, "Blog post not found")
		return
	}
	writeJSON(w, post, http.StatusOK)
}

// Create создает статью
//
//	@Summary	Create blog post
//	@Tags		Blog
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		request	body		CreateBlogPostRequest	true	"Post"
//	@Success	201		{object}	domain.BlogPost
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/blog [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogPostRequest
	if err := h.validator.Decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	post := req.ToDomain()
	if err := h.blog.Create(r.Context(), post); err != nil {
		writeStoreError(w, h.log, err, "Blog post not found")
		return
	}

	h.log.Info("blog post created", zap.String("id", post.ID), zap.String("slug", post.Slug))
	writeJSON(w, post, http.StatusCreated)
}

// Update частично обновляет статью
//
//	@Summary	Update blog post
//	@Tags		Blog
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		id		path		string					true	"Post ID"
//	@Param		request	body		domain.BlogPostPatch	true	"Fields to change"
//	@Success	200		{object}	domain.BlogPost
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/blog/{id} [patch]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.BlogPostPatch
	if err := h.validator.Decode(r, &patch); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.blog.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, h.log, err, "Blog post not found")
		return
	}
	writeJSON(w, post, http.StatusOK)
}

// Delete удаляет статью
//
//	@Summary	Delete blog post
//	@Tags		Blog
//	@Security	AdminKey
//	@Param		id	path	string	true	"Post ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/blog/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, h.log, err, "Blog post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
