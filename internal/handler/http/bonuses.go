package http

import (
	"BetGuide-Backend/internal/catalog"
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/internal/service"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BonusesHandler обработчик бонусов
type BonusesHandler struct {
	storage   repository.BonusStorage
	service   *service.BonusService
	validator *Validator
	log       *zap.Logger
}

// NewBonusesHandler создает обработчик бонусов
func NewBonusesHandler(storage repository.BonusStorage, svc *service.BonusService, validator *Validator, log *zap.Logger) *BonusesHandler {
	return &BonusesHandler{
		storage:   storage,
		service:   svc,
		validator: validator,
		log:       log,
	}
}

// ListActive возвращает активные бонусы
//
//	@Summary	List active bonuses
//	@Tags		Bonuses
//	@Produce	json
//	@Param		search	query	string	false	"Case-insensitive substring of title or description"
//	@Param		type	query	string	false	"Bonus type or all"
//	@Success	200		{array}	domain.Bonus
//	@Router		/api/bonuses [get]
func (h *BonusesHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.storage.ListActiveBonuses(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Bonus not found")
		return
	}
	writeJSON(w, catalog.ParseBonusFilter(r.URL.Query()).Apply(bonuses), http.StatusOK)
}

// ListAll возвращает все бонусы
//
//	@Summary	List all bonuses
//	@Tags		Bonuses
//	@Produce	json
//	@Security	AdminKey
//	@Success	200	{array}	domain.Bonus
//	@Router		/api/bonuses/all [get]
func (h *BonusesHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.storage.ListBonuses(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Bonus not found")
		return
	}
	writeJSON(w, bonuses, http.StatusOK)
}

// ListByBookmaker возвращает активные бонусы одного букмекера
//
//	@Summary	List bonuses of a bookmaker
//	@Tags		Bonuses
//	@Produce	json
//	@Param		bookmakerId	path	string	true	"Bookmaker ID"
//	@Success	200			{array}	domain.Bonus
//	@Router		/api/bonuses/bookmaker/{bookmakerId} [get]
func (h *BonusesHandler) ListByBookmaker(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.storage.ListBonusesByBookmaker(r.Context(), chi.URLParam(r, "bookmakerId"))
	if err != nil {
		writeStoreError(w, h.log, err, "Bonus not found")
		return
	}

	active := make([]*domain.Bonus, 0, len(bonuses))
	for _, b := range bonuses {
		if b.IsActive {
			active = append(active, b)
		}
	}
	writeJSON(w, active, http.StatusOK)
}

// Create создает бонус
//
//	@Summary	Create bonus
//	@Tags		Bonuses
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		request	body		CreateBonusRequest	true	"Bonus"
//	@Success	201		{object}	domain.Bonus
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/bonuses [post]
func (h *BonusesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBonusRequest
	if err := h.validator.Decode(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	bonus := req.ToDomain()
	if err := h.service.Create(r.Context(), bonus); err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("bonus created", zap.String("id", bonus.ID), zap.String("bookmaker_id", bonus.BookmakerID))
	writeJSON(w, bonus, http.StatusCreated)
}

// Update частично обновляет бонус
//
//	@Summary	Update bonus
//	@Tags		Bonuses
//	@Accept		json
//	@Produce	json
//	@Security	AdminKey
//	@Param		id		path		string				true	"Bonus ID"
//	@Param		request	body		domain.BonusPatch	true	"Fields to change"
//	@Success	200		{object}	domain.Bonus
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/bonuses/{id} [patch]
func (h *BonusesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.BonusPatch
	if err := h.validator.Decode(r, &patch); err != nil {
		writeValidationError(w, err)
		return
	}

	bonus, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, bonus, http.StatusOK)
}

// Delete удаляет бонус
//
//	@Summary	Delete bonus
//	@Tags		Bonuses
//	@Security	AdminKey
//	@Param		id	path	string	true	"Bonus ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/bonuses/{id} [delete]
func (h *BonusesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.DeleteBonus(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, h.log, err, "Bonus not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BonusesHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrUnknownBookmaker) {
		writeValidationError(w, fieldError("bookmakerId", "must reference an existing bookmaker"))
		return
	}
	writeStoreError(w, h.log, err, "Bonus not found")
}
