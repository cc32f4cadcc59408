package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBonusType используется, когда тип бонуса не указан.
const DefaultBonusType = "welcome"

// Bonus представляет промо-предложение букмекера.
// BookmakerID ссылается на букмекера без внешнего ключа в схеме.
type Bonus struct {
	ID               string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	BookmakerID      string    `gorm:"column:bookmaker_id;size:36;not null;index" json:"bookmakerId"`
	Title            string    `gorm:"column:title;not null" json:"title"`
	Description      string    `gorm:"column:description;type:text;not null" json:"description"`
	BonusCode        *string   `gorm:"column:bonus_code;size:100" json:"bonusCode"`
	BonusType        string    `gorm:"column:bonus_type;size:50;not null;index" json:"bonusType"` // welcome, reload, cashback, freebet, odds_boost...
	Value            string    `gorm:"column:value;not null" json:"value"`
	WagerRequirement *string   `gorm:"column:wager_requirement" json:"wagerRequirement"`
	MinDeposit       *string   `gorm:"column:min_deposit" json:"minDeposit"`
	ExpiresAt        *string   `gorm:"column:expires_at" json:"expiresAt"` // свободный текст, не дата
	IsActive         bool      `gorm:"column:is_active;not null;index" json:"isActive"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName возвращает название таблицы для GORM
func (Bonus) TableName() string {
	return "bonuses"
}

// Prepare назначает идентификатор новой записи.
func (b *Bonus) Prepare() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
}

// BeforeCreate вызывается GORM перед вставкой
func (b *Bonus) BeforeCreate(*gorm.DB) error {
	b.Prepare()
	return nil
}

// BonusPatch описывает частичное обновление бонуса.
type BonusPatch struct {
	BookmakerID      *string `json:"bookmakerId" validate:"omitnil,min=1"`
	Title            *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description      *string `json:"description" validate:"omitnil,min=1"`
	BonusCode        *string `json:"bonusCode" validate:"omitnil,max=100"`
	BonusType        *string `json:"bonusType" validate:"omitnil,min=1,max=50"`
	Value            *string `json:"value" validate:"omitnil,min=1"`
	WagerRequirement *string `json:"wagerRequirement"`
	MinDeposit       *string `json:"minDeposit"`
	ExpiresAt        *string `json:"expiresAt"`
	IsActive         *bool   `json:"isActive"`
}

// Columns возвращает изменяемые колонки.
func (p BonusPatch) Columns() map[string]any {
	cols := make(map[string]any)
	setColumn(cols, "bookmaker_id", p.BookmakerID)
	setColumn(cols, "title", p.Title)
	setColumn(cols, "description", p.Description)
	setColumn(cols, "bonus_code", p.BonusCode)
	setColumn(cols, "bonus_type", p.BonusType)
	setColumn(cols, "value", p.Value)
	setColumn(cols, "wager_requirement", p.WagerRequirement)
	setColumn(cols, "min_deposit", p.MinDeposit)
	setColumn(cols, "expires_at", p.ExpiresAt)
	setColumn(cols, "is_active", p.IsActive)
	return cols
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p BonusPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply переносит заданные поля патча на запись.
func (p BonusPatch) Apply(b *Bonus) {
	applyValue(&b.BookmakerID, p.BookmakerID)
	applyValue(&b.Title, p.Title)
	applyValue(&b.Description, p.Description)
	applyOptional(&b.BonusCode, p.BonusCode)
	applyValue(&b.BonusType, p.BonusType)
	applyValue(&b.Value, p.Value)
	applyOptional(&b.WagerRequirement, p.WagerRequirement)
	applyOptional(&b.MinDeposit, p.MinDeposit)
	applyOptional(&b.ExpiresAt, p.ExpiresAt)
	applyValue(&b.IsActive, p.IsActive)
}
