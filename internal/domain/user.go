package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User представляет учетную запись администратора каталога.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	Username  string    `gorm:"column:username;size:100;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;not null" json:"-"` // bcrypt хеш, в JSON не отдается
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName возвращает название таблицы для GORM
func (User) TableName() string {
	return "users"
}

// Prepare назначает идентификатор новой записи.
func (u *User) Prepare() {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
}

// BeforeCreate вызывается GORM перед вставкой
func (u *User) BeforeCreate(*gorm.DB) error {
	u.Prepare()
	return nil
}
