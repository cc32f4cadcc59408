package http

import (
	"BetGuide-Backend/internal/catalog"
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookmakersHandler обработчик каталога букмекеров
type BookmakersHandler struct {
	storage   repository.BookmakerStorage
	validator *Validator
	log       *zap.Logger
}

// NewBookmakersHandler создает обработчик букмекеров
func NewBookmakersHandler(storage repository.BookmakerStorage, validator *Validator, log *zap.Logger) *BookmakersHandler {
	return &BookmakersHandler{
		storage:   storage,
		validator: validator,
		log:       log,
	}
}

// ListActive возвращает активных букмекеров
//
//	@Summary		List active bookmakers
//	@Description	Active bookmakers ordered by rank, with optional search, trust tier and sort
//	@Tags			Bookmakers
//	@Produce		json
//	@Param			search	query		string	false	"Case-insensitive substring of name or description"
//	@Param			trust	query		string	false	"all, excellent, good, average, poor"
//	@Param			sort	query		string	false	"rank, rating, trust, name"
//	@Success		200		{array}		domain.Bookmaker
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/bookmakers [get]
func (h *BookmakersHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	filter, err := catalog.ParseBookmakerFilter(r.URL.Query())
	if err != nil {
		var pe *catalog.ParamError
		if errors.As(err, &pe) {
			writeValidationError(w, fieldError(pe.Param, err.Error()))
			return
		}
		writeError(w, "Invalid query", http.StatusBadRequest)
		return
	}

	bookmakers, err := h.storage.ListActiveBookmakers(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}

	if !filter.IsDefault() {
		bookmakers = filter.Apply(bookmakers)
	}
	writeJSON(w, bookmakers, http.StatusOK)
}

// ListFeatured возвращает активных избранных букмекеров
//
//	@Summary	List featured bookmakers
//	@Tags		Bookmakers
//	@Produce	json
//	@Success	200	{array}	domain.Bookmaker
//	@Router		/api/bookmakers/featured [get]
func (h *BookmakersHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	bookmakers, err := h.storage.ListFeaturedBookmakers(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}
	writeJSON(w, bookmakers, http.StatusOK)
}

// ListAll возвращает всех букмекеров, включая неактивных
//
//	@Summary	List all bookmakers
//	@Tags		Bookmakers
//	@Produce	json
//	@Security	AdminKey
//	@Success	200	{array}		domain.Bookmaker
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/bookmakers/all [get]
func (h *BookmakersHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookmakers, err := h.storage.ListBookmakers(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}
	writeJSON(w, bookmakers, http.StatusOK)
}

// GetBySlug возвращает активного букмекера по slug
//
//	@Summary	Get bookmaker by slug
//	@Tags		Bookmakers
//	@Produce	json
//	@Param		slug	path		string	true	"Bookmaker slug"
//	@Success	200		{object}	domain.Bookmaker
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/bookmakers/{slug} [get]
func (h *BookmakersHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	bookmaker, err := h.storage.GetBookmakerBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err == nil && !bookmaker.IsActive {
		err = repository.ErrNotFound
	}
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}
	writeJSON(w, bookmaker, http.StatusOK)
}

// Create создает букмекера
//
//	@Summary	Create bookmaker
//	@Tags		Bookmakers
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		request	body		CreateBookmakerRequest	true	"Bookmaker"
//	@Success	201		{object}	domain.Bookmaker
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/bookmakers [post]
func (h *BookmakersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookmakerRequest
	if err := h.validator.Decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	bookmaker := req.ToDomain()
	if err := h.storage.CreateBookmaker(r.Context(), bookmaker); err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}

	h.log.Info("bookmaker created", zap.String("id", bookmaker.ID), zap.String("slug", bookmaker.Slug))
	writeJSON(w, bookmaker, http.StatusCreated)
}

// Update частично обновляет букмекера. slug и clickCount изменить нельзя.
//
//	@Summary	Update bookmaker
//	@Tags		Bookmakers
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		id		path		string					true	"Bookmaker ID"
//	@Param		request	body		domain.BookmakerPatch	true	"Fields to change"
//	@Success	200		{object}	domain.Bookmaker
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/bookmakers/{id} [patch]
func (h *BookmakersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.BookmakerPatch
	if err := h.validator.Decode(r, &patch); err != nil {
		writeValidationError(w, err)
		return
	}

	bookmaker, err := h.storage.UpdateBookmaker(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}
	writeJSON(w, bookmaker, http.StatusOK)
}

// Delete удаляет букмекера вместе с его бонусами
//
//	@Summary	Delete bookmaker
//	@Tags		Bookmakers
//	@Security	AdminKey
//	@Param		id	path	string	true	"Bookmaker ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/bookmakers/{id} [delete]
func (h *BookmakersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.storage.DeleteBookmaker(r.Context(), id); err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}

	h.log.Info("bookmaker deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
