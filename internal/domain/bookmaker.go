package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Default values applied to a bookmaker when the caller leaves them unset.
const (
	DefaultTrustScoreLabel = "Unrated"
	DefaultPayoutSpeed     = "Unknown"
	DefaultMinDeposit      = "N/A"
	DefaultMaxPayout       = "N/A"
)

// Bookmaker представляет букмекера в каталоге. Центральная сущность.
type Bookmaker struct {
	ID              string  `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name            string  `gorm:"column:name;not null" json:"name"`
	Slug            string  `gorm:"column:slug;size:150;not null;uniqueIndex" json:"slug"`
	Logo            string  `gorm:"column:logo;not null" json:"logo"`
	Description     string  `gorm:"column:description;type:text;not null" json:"description"`
	LongDescription *string `gorm:"column:long_description;type:text" json:"longDescription"`
	WebsiteURL      string  `gorm:"column:website_url;not null" json:"websiteUrl"`
	AffiliateURL    string  `gorm:"column:affiliate_url;not null" json:"affiliateUrl"`

	// Рейтинги 0-10, задаются извне и не вычисляются
	OverallRating float64 `gorm:"column:overall_rating;not null" json:"overallRating"`
	TrustScore    float64 `gorm:"column:trust_score;not null" json:"trustScore"`
	OddsRating    float64 `gorm:"column:odds_rating;not null" json:"oddsRating"`
	BonusRating   float64 `gorm:"column:bonus_rating;not null" json:"bonusRating"`
	UIRating      float64 `gorm:"column:ui_rating;not null" json:"uiRating"`
	SupportRating float64 `gorm:"column:support_rating;not null" json:"supportRating"`

	TrustScoreLabel string  `gorm:"column:trust_score_label;size:50;not null" json:"trustScoreLabel"`
	PayoutSpeed     string  `gorm:"column:payout_speed;size:100;not null" json:"payoutSpeed"`
	MinDeposit      string  `gorm:"column:min_deposit;size:100;not null" json:"minDeposit"`
	MaxPayout       string  `gorm:"column:max_payout;size:100;not null" json:"maxPayout"`
	Established     *string `gorm:"column:established;size:50" json:"established"`
	License         *string `gorm:"column:license" json:"license"`

	CryptosAccepted datatypes.JSONSlice[string] `gorm:"column:cryptos_accepted" json:"cryptosAccepted"`
	SportsCovered   datatypes.JSONSlice[string] `gorm:"column:sports_covered" json:"sportsCovered"`
	Pros            datatypes.JSONSlice[string] `gorm:"column:pros" json:"pros"`
	Cons            datatypes.JSONSlice[string] `gorm:"column:cons" json:"cons"`

	Featured   bool  `gorm:"column:featured;not null;index" json:"featured"`
	Rank       int   `gorm:"column:rank;not null;index" json:"rank"`
	IsActive   bool  `gorm:"column:is_active;not null;index" json:"isActive"`
	ClickCount int64 `gorm:"column:click_count;not null" json:"clickCount"` // изменяется только трекингом кликов

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName возвращает название таблицы для GORM
func (Bookmaker) TableName() string {
	return "bookmakers"
}

// Prepare назначает идентификатор и приводит списки к пустым массивам.
// Счетчик кликов новой записи всегда начинается с нуля.
func (b *Bookmaker) Prepare() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.ClickCount = 0
	b.CryptosAccepted = nonNil(b.CryptosAccepted)
	b.SportsCovered = nonNil(b.SportsCovered)
	b.Pros = nonNil(b.Pros)
	b.Cons = nonNil(b.Cons)
}

// BeforeCreate вызывается GORM перед вставкой
func (b *Bookmaker) BeforeCreate(*gorm.DB) error {
	b.Prepare()
	return nil
}

// BookmakerPatch описывает частичное обновление букмекера.
// Nil означает "не изменять". Slug и ClickCount изменять нельзя.
type BookmakerPatch struct {
	Name            *string   `json:"name" validate:"omitnil,min=1,max=255"`
	Logo            *string   `json:"logo" validate:"omitnil,min=1"`
	Description     *string   `json:"description" validate:"omitnil,min=1"`
	LongDescription *string   `json:"longDescription"`
	WebsiteURL      *string   `json:"websiteUrl" validate:"omitnil,url"`
	AffiliateURL    *string   `json:"affiliateUrl" validate:"omitnil,url"`
	OverallRating   *float64  `json:"overallRating" validate:"omitnil,gte=0,lte=10"`
	TrustScore      *float64  `json:"trustScore" validate:"omitnil,gte=0,lte=10"`
	OddsRating      *float64  `json:"oddsRating" validate:"omitnil,gte=0,lte=10"`
	BonusRating     *float64  `json:"bonusRating" validate:"omitnil,gte=0,lte=10"`
	UIRating        *float64  `json:"uiRating" validate:"omitnil,gte=0,lte=10"`
	SupportRating   *float64  `json:"supportRating" validate:"omitnil,gte=0,lte=10"`
	TrustScoreLabel *string   `json:"trustScoreLabel" validate:"omitnil,min=1,max=50"`
	PayoutSpeed     *string   `json:"payoutSpeed" validate:"omitnil,min=1,max=100"`
	MinDeposit      *string   `json:"minDeposit" validate:"omitnil,min=1,max=100"`
	MaxPayout       *string   `json:"maxPayout" validate:"omitnil,min=1,max=100"`
	Established     *string   `json:"established" validate:"omitnil,max=50"`
	License         *string   `json:"license"`
	CryptosAccepted *[]string `json:"cryptosAccepted"`
	SportsCovered   *[]string `json:"sportsCovered"`
	Pros            *[]string `json:"pros"`
	Cons            *[]string `json:"cons"`
	Featured        *bool     `json:"featured"`
	Rank            *int      `json:"rank"`
	IsActive        *bool     `json:"isActive"`
}

// Columns возвращает изменяемые колонки. Нулевые значения (false, 0, "") тоже попадают в карту.
func (p BookmakerPatch) Columns() map[string]any {
	cols := make(map[string]any)
	setColumn(cols, "name", p.Name)
	setColumn(cols, "logo", p.Logo)
	setColumn(cols, "description", p.Description)
	setColumn(cols, "long_description", p.LongDescription)
	setColumn(cols, "website_url", p.WebsiteURL)
	setColumn(cols, "affiliate_url", p.AffiliateURL)
	setColumn(cols, "overall_rating", p.OverallRating)
	setColumn(cols, "trust_score", p.TrustScore)
	setColumn(cols, "odds_rating", p.OddsRating)
	setColumn(cols, "bonus_rating", p.BonusRating)
	setColumn(cols, "ui_rating", p.UIRating)
	setColumn(cols, "support_rating", p.SupportRating)
	setColumn(cols, "trust_score_label", p.TrustScoreLabel)
	setColumn(cols, "payout_speed", p.PayoutSpeed)
	setColumn(cols, "min_deposit", p.MinDeposit)
	setColumn(cols, "max_payout", p.MaxPayout)
	setColumn(cols, "established", p.Established)
	setColumn(cols, "license", p.License)
	setListColumn(cols, "cryptos_accepted", p.CryptosAccepted)
	setListColumn(cols, "sports_covered", p.SportsCovered)
	setListColumn(cols, "pros", p.Pros)
	setListColumn(cols, "cons", p.Cons)
	setColumn(cols, "featured", p.Featured)
	setColumn(cols, "rank", p.Rank)
	setColumn(cols, "is_active", p.IsActive)
	return cols
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p BookmakerPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply переносит заданные поля патча на запись.
func (p BookmakerPatch) Apply(b *Bookmaker) {
	applyValue(&b.Name, p.Name)
	applyValue(&b.Logo, p.Logo)
	applyValue(&b.Description, p.Description)
	applyOptional(&b.LongDescription, p.LongDescription)
	applyValue(&b.WebsiteURL, p.WebsiteURL)
	applyValue(&b.AffiliateURL, p.AffiliateURL)
	applyValue(&b.OverallRating, p.OverallRating)
	applyValue(&b.TrustScore, p.TrustScore)
	applyValue(&b.OddsRating, p.OddsRating)
	applyValue(&b.BonusRating, p.BonusRating)
	applyValue(&b.UIRating, p.UIRating)
	applyValue(&b.SupportRating, p.SupportRating)
	applyValue(&b.TrustScoreLabel, p.TrustScoreLabel)
	applyValue(&b.PayoutSpeed, p.PayoutSpeed)
	applyValue(&b.MinDeposit, p.MinDeposit)
	applyValue(&b.MaxPayout, p.MaxPayout)
	applyOptional(&b.Established, p.Established)
	applyOptional(&b.License, p.License)
	applyList(&b.CryptosAccepted, p.CryptosAccepted)
	applyList(&b.SportsCovered, p.SportsCovered)
	applyList(&b.Pros, p.Pros)
	applyList(&b.Cons, p.Cons)
	applyValue(&b.Featured, p.Featured)
	applyValue(&b.Rank, p.Rank)
	applyValue(&b.IsActive, p.IsActive)
}
