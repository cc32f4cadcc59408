package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultBlogCategory используется, когда категория статьи не указана.
const DefaultBlogCategory = "guide"

// BlogPost представляет статью блога. Content хранит HTML.
type BlogPost struct {
	ID          string                      `gorm:"primaryKey;column:id;size:36" json:"id"`
	Title       string                      `gorm:"column:title;not null" json:"title"`
	Slug        string                      `gorm:"column:slug;size:150;not null;uniqueIndex" json:"slug"`
	Excerpt     string                      `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Content     string                      `gorm:"column:content;type:text;not null" json:"content"`
	Category    string                      `gorm:"column:category;size:100;not null" json:"category"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	PublishedAt *string                     `gorm:"column:published_at" json:"publishedAt"`
	IsPublished bool                        `gorm:"column:is_published;not null;index" json:"isPublished"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName возвращает название таблицы для GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}

// Prepare назначает идентификатор и приводит теги к пустому массиву.
func (p *BlogPost) Prepare() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Tags = nonNil(p.Tags)
}

// BeforeCreate вызывается GORM перед вставкой
func (p *BlogPost) BeforeCreate(*gorm.DB) error {
	p.Prepare()
	return nil
}

// BlogPostPatch описывает частичное обновление статьи. Slug изменять нельзя.
type BlogPostPatch struct {
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Excerpt     *string   `json:"excerpt" validate:"omitnil,min=1"`
	Content     *string   `json:"content" validate:"omitnil,min=1"`
	Category    *string   `json:"category" validate:"omitnil,min=1,max=100"`
	Tags        *[]string `json:"tags"`
	PublishedAt *string   `json:"publishedAt"`
	IsPublished *bool     `json:"isPublished"`
}

// Columns возвращает изменяемые колонки.
func (p BlogPostPatch) Columns() map[string]any {
	cols := make(map[string]any)
	setColumn(cols, "title", p.Title)
	setColumn(cols, "excerpt", p.Excerpt)
	setColumn(cols, "content", p.Content)
	setColumn(cols, "category", p.Category)
	setListColumn(cols, "tags", p.Tags)
	setColumn(cols, "published_at", p.PublishedAt)
	setColumn(cols, "is_published", p.IsPublished)
	return cols
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p BlogPostPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply переносит заданные поля патча на запись.
func (p BlogPostPatch) Apply(post *BlogPost) {
	applyValue(&post.Title, p.Title)
	applyValue(&post.Excerpt, p.Excerpt)
	applyValue(&post.Content, p.Content)
	applyValue(&post.Category, p.Category)
	applyList(&post.Tags, p.Tags)
	applyOptional(&post.PublishedAt, p.PublishedAt)
	applyValue(&post.IsPublished, p.IsPublished)
}
