package http

import (
	"BetGuide-Backend/internal/analytics"
	"BetGuide-Backend/internal/repository"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AffiliateHandler обработчик кликов по партнерским ссылкам
type AffiliateHandler struct {
	bookmakers repository.BookmakerStorage
	clicks     repository.AffiliateStorage
	tracker    *analytics.Tracker
	log        *zap.Logger
}

// NewAffiliateHandler создает обработчик кликов
func NewAffiliateHandler(
	bookmakers repository.BookmakerStorage,
	clicks repository.AffiliateStorage,
	tracker *analytics.Tracker,
	log *zap.Logger,
) *AffiliateHandler {
	return &AffiliateHandler{
		bookmakers: bookmakers,
		clicks:     clicks,
		tracker:    tracker,
		log:        log,
	}
}

// TrackClick записывает клик и возвращает партнерскую ссылку
//
//	@Summary		Track affiliate click
//	@Description	Logs the click, increments the bookmaker's click counter and returns its affiliate URL
//	@Tags			Affiliate
//	@Produce		json
//	@Param			id	path		string	true	"Bookmaker ID"
//	@Success		200	{object}	ClickResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/bookmakers/{id}/click [post]
func (h *AffiliateHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	bookmaker, err := h.bookmakers.GetBookmakerByID(r.Context(), chi.URLParam(r, "id"))
	if err == nil && !bookmaker.IsActive {
		err = repository.ErrNotFound
	}
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}

	_, err = h.tracker.Track(r.Context(), bookmaker, analytics.ClickData{
		Referrer:  r.Referer(),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeStoreError(w, h.log, err, "Bookmaker not found")
		return
	}

	writeJSON(w, ClickResponse{AffiliateURL: bookmaker.AffiliateURL}, http.StatusOK)
}

// ListClicks возвращает журнал кликов, новые первыми
//
//	@Summary	List affiliate clicks
//	@Tags		Affiliate
//	@Produce	json
//	@Security	AdminKey
//	@Success	200	{array}		domain.AffiliateClick
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/affiliate/clicks [get]
func (h *AffiliateHandler) ListClicks(w http.ResponseWriter, r *http.Request) {
	clicks, err := h.clicks.ListAffiliateClicks(r.Context())
	if err != nil {
		writeStoreError(w, h.log, err, "Click not found")
		return
	}
	writeJSON(w, clicks, http.StatusOK)
}

// ListClicksByBookmaker возвращает клики одного букмекера
//
//	@Summary	List affiliate clicks of a bookmaker
//	@Tags		Affiliate
//	@Produce	json
//	@Security	AdminKey
//	@Param		bookmakerId	path		string	true	"Bookmaker ID"
//	@Success	200			{array}		domain.AffiliateClick
//	@Failure	401			{object}	ErrorResponse
//	@Router		/api/affiliate/clicks/{bookmakerId} [get]
func (h *AffiliateHandler) ListClicksByBookmaker(w http.ResponseWriter, r *http.Request) {
	clicks, err := h.clicks.ListAffiliateClicksByBookmaker(r.Context(), chi.URLParam(r, "bookmakerId"))
	if err != nil {
		writeStoreError(w, h.log, err, "Click not found")
		return
	}
	writeJSON(w, clicks, http.StatusOK)
}
