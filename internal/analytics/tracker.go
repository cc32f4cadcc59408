package analytics

import (
	"BetGuide-Backend/internal/domain"
	"BetGuide-Backend/internal/metrics"
	"BetGuide-Backend/internal/repository"
	"BetGuide-Backend/pkg/useragent"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ClickData represents a visitor following a bookmaker's affiliate link
type ClickData struct {
	Referrer  string
	UserAgent string
	ClickedAt time.Time // zero means now
}

// Tracker records affiliate clicks synchronously within the request.
// The counter bump and the log insert are one storage transaction.
type Tracker struct {
	storage repository.AffiliateStorage
	parser  *useragent.Parser
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewTracker creates a click tracker. parser and m may be nil to skip
// device enrichment and Prometheus counting.
func NewTracker(storage repository.AffiliateStorage, parser *useragent.Parser, m *metrics.Metrics, log *zap.Logger) *Tracker {
	return &Tracker{
		storage: storage,
		parser:  parser,
		metrics: m,
		log:     log,
	}
}

// Track stores a click for bookmaker and increments its click counter.
// Returns repository.ErrNotFound if the bookmaker disappeared meanwhile.
func (t *Tracker) Track(ctx context.Context, bookmaker *domain.Bookmaker, data ClickData) (*domain.AffiliateClick, error) {
	click := &domain.AffiliateClick{
		BookmakerID: bookmaker.ID,
		ClickedAt:   data.ClickedAt.UTC(),
		Referrer:    optional(data.Referrer),
		UserAgent:   optional(data.UserAgent),
	}
	if data.ClickedAt.IsZero() {
		click.ClickedAt = time.Now().UTC()
	}

	if t.parser != nil && click.UserAgent != nil {
		info := t.parser.Parse(data.UserAgent)
		click.DeviceType = &info.DeviceType
		click.Browser = &info.Browser
		click.OS = &info.OS
	}

	if err := t.storage.RecordAffiliateClick(ctx, click); err != nil {
		return nil, fmt.Errorf("failed to track click: %w", err)
	}

	if t.metrics != nil {
		t.metrics.RecordAffiliateClick(bookmaker.Slug)
	}

	t.log.Info("affiliate click recorded",
		zap.String("bookmaker_id", bookmaker.ID),
		zap.String("slug", bookmaker.Slug),
		zap.String("device_type", click.GetDeviceType()),
	)
	return click, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
