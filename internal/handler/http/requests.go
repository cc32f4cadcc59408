package http

import (
	"BetGuide-Backend/internal/domain"

	"gorm.io/datatypes"
)

// CreateBookmakerRequest тело POST /api/bookmakers.
// Необязательные поля получают значения по умолчанию в ToDomain.
type CreateBookmakerRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Slug            string   `json:"slug" validate:"required,max=150,slug"`
	Logo            string   `json:"logo" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	LongDescription *string  `json:"longDescription"`
	WebsiteURL      string   `json:"websiteUrl" validate:"required,url"`
	AffiliateURL    string   `json:"affiliateUrl" validate:"required,url"`
	OverallRating   *float64 `json:"overallRating" validate:"omitnil,gte=0,lte=10"`
	TrustScore      *float64 `json:"trustScore" validate:"omitnil,gte=0,lte=10"`
	OddsRating      *float64 `json:"oddsRating" validate:"omitnil,gte=0,lte=10"`
	BonusRating     *float64 `json:"bonusRating" validate:"omitnil,gte=0,lte=10"`
	UIRating        *float64 `json:"uiRating" validate:"omitnil,gte=0,lte=10"`
	SupportRating   *float64 `json:"supportRating" validate:"omitnil,gte=0,lte=10"`
	TrustScoreLabel *string  `json:"trustScoreLabel" validate:"omitnil,min=1,max=50"`
	PayoutSpeed     *string  `json:"payoutSpeed" validate:"omitnil,min=1,max=100"`
	MinDeposit      *string  `json:"minDeposit" validate:"omitnil,min=1,max=100"`
	MaxPayout       *string  `json:"maxPayout" validate:"omitnil,min=1,max=100"`
	Established     *string  `json:"established" validate:"omitnil,max=50"`
	License         *string  `json:"license"`
	CryptosAccepted []string `json:"cryptosAccepted"`
	SportsCovered   []string `json:"sportsCovered"`
	Pros            []string `json:"pros"`
	Cons            []string `json:"cons"`
	Featured        *bool    `json:"featured"`
	Rank            *int     `json:"rank"`
	IsActive        *bool    `json:"isActive"`
}

func (r CreateBookmakerRequest) ToDomain() *domain.Bookmaker {
	return &domain.Bookmaker{
		Name:            r.Name,
		Slug:            r.Slug,
		Logo:            r.Logo,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		WebsiteURL:      r.WebsiteURL,
		AffiliateURL:    r.AffiliateURL,
		OverallRating:   valueOr(r.OverallRating, 0),
		TrustScore:      valueOr(r.TrustScore, 0),
		OddsRating:      valueOr(r.OddsRating, 0),
		BonusRating:     valueOr(r.BonusRating, 0),
		UIRating:        valueOr(r.UIRating, 0),
		SupportRating:   valueOr(r.SupportRating, 0),
		TrustScoreLabel: valueOr(r.TrustScoreLabel, domain.DefaultTrustScoreLabel),
		PayoutSpeed:     valueOr(r.PayoutSpeed, domain.DefaultPayoutSpeed),
		MinDeposit:      valueOr(r.MinDeposit, domain.DefaultMinDeposit),
		MaxPayout:       valueOr(r.MaxPayout, domain.DefaultMaxPayout),
		Established:     r.Established,
		License:         r.License,
		CryptosAccepted: datatypes.JSONSlice[string](r.CryptosAccepted),
		SportsCovered:   datatypes.JSONSlice[string](r.SportsCovered),
		Pros:            datatypes.JSONSlice[string](r.Pros),
		Cons:            datatypes.JSONSlice[string](r.Cons),
		Featured:        valueOr(r.Featured, false),
		Rank:            valueOr(r.Rank, 0),
		IsActive:        valueOr(r.IsActive, true),
	}
}

// CreateBonusRequest тело POST /api/bonuses
type CreateBonusRequest struct {
	BookmakerID      string  `json:"bookmakerId" validate:"required"`
	Title            string  `json:"title" validate:"required,max=255"`
	Description      string  `json:"description" validate:"required"`
	BonusCode        *string `json:"bonusCode" validate:"omitnil,max=100"`
	BonusType        *string `json:"bonusType" validate:"omitnil,min=1,max=50"`
	Value            string  `json:"value" validate:"required"`
	WagerRequirement *string `json:"wagerRequirement"`
	MinDeposit       *string `json:"minDeposit"`
	ExpiresAt        *string `json:"expiresAt"`
	IsActive         *bool   `json:"isActive"`
}

func (r CreateBonusRequest) ToDomain() *domain.Bonus {
	return &domain.Bonus{
		BookmakerID:      r.BookmakerID,
		Title:            r.Title,
		Description:      r.Description,
		BonusCode:        r.BonusCode,
		BonusType:        valueOr(r.BonusType, domain.DefaultBonusType),
		Value:            r.Value,
		WagerRequirement: r.WagerRequirement,
		MinDeposit:       r.MinDeposit,
		ExpiresAt:        r.ExpiresAt,
		IsActive:         valueOr(r.IsActive, true),
	}
}

// CreateBlogPostRequest тело POST /api/blog
type CreateBlogPostRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Slug        string   `json:"slug" validate:"required,max=150,slug"`
	Excerpt     string   `json:"excerpt" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Category    *string  `json:"category" validate:"omitnil,min=1,max=100"`
	Tags        []string `json:"tags"`
	PublishedAt *string  `json:"publishedAt"`
	IsPublished *bool    `json:"isPublished"`
}

func (r CreateBlogPostRequest) ToDomain() *domain.BlogPost {
	return &domain.BlogPost{
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Category:    valueOr(r.Category, domain.DefaultBlogCategory),
		Tags:        datatypes.JSONSlice[string](r.Tags),
		PublishedAt: r.PublishedAt,
		IsPublished: valueOr(r.IsPublished, false),
	}
}

// ClickResponse ответ на клик по партнерской ссылке
type ClickResponse struct {
	AffiliateURL string `json:"affiliateUrl"`
}

func valueOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}
