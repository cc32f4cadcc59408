package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

func TestBookmakerPatch_Columns(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		var p BookmakerPatch
		assert.True(t, p.IsEmpty())
		assert.Empty(t, p.Columns())
	})

	t.Run("zero values are kept", func(t *testing.T) {
		p := BookmakerPatch{
			Rank:     ptr(0),
			Featured: ptr(false),
			Pros:     &[]string{},
		}
		cols := p.Columns()
		require.Len(t, cols, 3)
		assert.Equal(t, 0, cols["rank"])
		assert.Equal(t, false, cols["featured"])
		assert.Equal(t, datatypes.JSONSlice[string]{}, cols["pros"])
		assert.False(t, p.IsEmpty())
	})
}

func TestBookmakerPatch_Apply(t *testing.T) {
	b := Bookmaker{
		Name:          "Stake",
		Slug:          "stake",
		Rank:          1,
		OverallRating: 9.1,
		Featured:      true,
		Pros:          datatypes.JSONSlice[string]{"fast payouts"},
	}

	BookmakerPatch{
		Rank:     ptr(2),
		Featured: ptr(false),
		License:  ptr("Curacao"),
		Cons:     &[]string{"no live chat"},
	}.Apply(&b)

	assert.Equal(t, 2, b.Rank)
	assert.False(t, b.Featured)
	require.NotNil(t, b.License)
	assert.Equal(t, "Curacao", *b.License)
	assert.Equal(t, datatypes.JSONSlice[string]{"no live chat"}, b.Cons)

	// untouched fields
	assert.Equal(t, "Stake", b.Name)
	assert.Equal(t, "stake", b.Slug)
	assert.Equal(t, 9.1, b.OverallRating)
	assert.Equal(t, datatypes.JSONSlice[string]{"fast payouts"}, b.Pros)
}

func TestBonusPatch_Apply(t *testing.T) {
	b := Bonus{Title: "Welcome", BonusType: "welcome", IsActive: true}

	p := BonusPatch{IsActive: ptr(false), BonusCode: ptr("BET100")}
	p.Apply(&b)

	assert.False(t, b.IsActive)
	require.NotNil(t, b.BonusCode)
	assert.Equal(t, "BET100", *b.BonusCode)
	assert.Equal(t, "Welcome", b.Title)
	assert.Equal(t, map[string]any{"is_active": false, "bonus_code": "BET100"}, p.Columns())
}

func TestBlogPostPatch_Apply(t *testing.T) {
	post := BlogPost{Title: "Guide", Tags: datatypes.JSONSlice[string]{"btc"}}

	BlogPostPatch{Tags: &[]string{}, IsPublished: ptr(true)}.Apply(&post)

	assert.True(t, post.IsPublished)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
	assert.Equal(t, "Guide", post.Title)
}

func TestPrepare(t *testing.T) {
	b := Bookmaker{ClickCount: 42}
	b.Prepare()

	assert.NotEmpty(t, b.ID)
	assert.Zero(t, b.ClickCount)
	assert.NotNil(t, b.Pros)
	assert.NotNil(t, b.CryptosAccepted)

	id := b.ID
	b.Prepare()
	assert.Equal(t, id, b.ID)

	c := AffiliateClick{}
	c.Prepare()
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.ClickedAt.IsZero())
	assert.Equal(t, "unknown", c.GetDeviceType())
}
