package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AffiliateClick представляет переход посетителя по партнерской ссылке.
// Запись только добавляется, никогда не изменяется и не удаляется.
type AffiliateClick struct {
	ID          string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	BookmakerID string    `gorm:"column:bookmaker_id;size:36;not null;index" json:"bookmakerId"`
	ClickedAt   time.Time `gorm:"column:clicked_at;not null;index" json:"clickedAt"`
	Referrer    *string   `gorm:"column:referrer;type:text" json:"referrer"`
	UserAgent   *string   `gorm:"column:user_agent;type:text" json:"userAgent"`
	DeviceType  *string   `gorm:"column:device_type;size:10" json:"deviceType,omitempty"` // 'desktop', 'mobile', 'tablet', 'bot'
	Browser     *string   `gorm:"column:browser;size:50" json:"browser,omitempty"`
	OS          *string   `gorm:"column:os;size:50" json:"os,omitempty"`
}

// TableName возвращает название таблицы для GORM
func (AffiliateClick) TableName() string {
	return "affiliate_clicks"
}

// Prepare назначает идентификатор и время клика, если они не заданы.
func (c *AffiliateClick) Prepare() {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ClickedAt.IsZero() {
		c.ClickedAt = time.Now().UTC()
	}
}

// BeforeCreate вызывается GORM перед вставкой
func (c *AffiliateClick) BeforeCreate(*gorm.DB) error {
	c.Prepare()
	return nil
}

// GetDeviceType возвращает тип устройства или "unknown"
func (c *AffiliateClick) GetDeviceType() string {
	if c.DeviceType != nil {
		return *c.DeviceType
	}
	return "unknown"
}
