package catalog

import (
	"BetGuide-Backend/internal/domain"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []*domain.Bookmaker {
	return []*domain.Bookmaker{
		{Name: "Stake", Description: "Crypto casino and sportsbook", TrustScore: 9.4, OverallRating: 9.0, Rank: 1},
		{Name: "BC.Game", Description: "Huge crypto selection", TrustScore: 8.1, OverallRating: 9.3, Rank: 2},
		{Name: "Cloudbet", Description: "Sharp odds on esports", TrustScore: 7.0, OverallRating: 8.2, Rank: 3},
		{Name: "Sketchy Bet", Description: "Slow payouts", TrustScore: 3.2, OverallRating: 4.0, Rank: 4},
		{Name: "average joe", Description: "Mid-tier", TrustScore: 5.0, OverallRating: 6.1, Rank: 5},
	}
}

func names(list []*domain.Bookmaker) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.Name)
	}
	return out
}

func TestParseBookmakerFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := ParseBookmakerFilter(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, BookmakerFilter{Trust: TrustAll, Sort: SortRank}, f)
		assert.True(t, f.IsDefault())
	})

	t.Run("normalizes case", func(t *testing.T) {
		f, err := ParseBookmakerFilter(url.Values{"trust": {"Excellent"}, "sort": {" NAME "}, "search": {" crypto "}})
		require.NoError(t, err)
		assert.Equal(t, BookmakerFilter{Search: "crypto", Trust: TrustExcellent, Sort: SortName}, f)
		assert.False(t, f.IsDefault())
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseBookmakerFilter(url.Values{"trust": {"legendary"}})
		var perr *ParamError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "trust", perr.Param)

		_, err = ParseBookmakerFilter(url.Values{"sort": {"clicks"}})
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "sort", perr.Param)
		assert.Contains(t, perr.Error(), "rank, rating, trust, name")
	})
}

func TestBookmakerFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter BookmakerFilter
		want   []string
	}{
		{"default keeps rank order", BookmakerFilter{}, []string{"Stake", "BC.Game", "Cloudbet", "Sketchy Bet", "average joe"}},
		{"search matches name or description", BookmakerFilter{Search: "CRYPTO"}, []string{"Stake", "BC.Game"}},
		{"excellent", BookmakerFilter{Trust: TrustExcellent}, []string{"Stake"}},
		{"good is 7 up to 9", BookmakerFilter{Trust: TrustGood}, []string{"BC.Game", "Cloudbet"}},
		{"average is 5 up to 7", BookmakerFilter{Trust: TrustAverage}, []string{"average joe"}},
		{"poor", BookmakerFilter{Trust: TrustPoor}, []string{"Sketchy Bet"}},
		{"sort by rating", BookmakerFilter{Sort: SortRating}, []string{"BC.Game", "Stake", "Cloudbet", "average joe", "Sketchy Bet"}},
		{"sort by trust", BookmakerFilter{Sort: SortTrust, Trust: TrustAll}, []string{"Stake", "BC.Game", "Cloudbet", "average joe", "Sketchy Bet"}},
		{"sort by name ignores case", BookmakerFilter{Sort: SortName}, []string{"average joe", "BC.Game", "Cloudbet", "Sketchy Bet", "Stake"}},
		{"no match is empty, not nil", BookmakerFilter{Search: "nothing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := fixtures()
			got := tt.filter.Apply(input)
			assert.Equal(t, tt.want, names(got))
			assert.NotNil(t, got)
			assert.Equal(t, "Stake", input[0].Name, "input slice untouched")
		})
	}
}

func TestBonusFilter(t *testing.T) {
	bonuses := []*domain.Bonus{
		{Title: "200% Welcome", Description: "First deposit", BonusType: "welcome"},
		{Title: "Weekly Reload", Description: "Every Monday", BonusType: "reload"},
		{Title: "Cashback", Description: "10% back on losses, welcome to VIP", BonusType: "cashback"},
	}

	f := ParseBonusFilter(url.Values{"type": {"all"}, "search": {"welcome"}})
	assert.Equal(t, BonusFilter{Search: "welcome"}, f)
	assert.Len(t, f.Apply(bonuses), 2)

	f = ParseBonusFilter(url.Values{"type": {"reload"}})
	got := f.Apply(bonuses)
	require.Len(t, got, 1)
	assert.Equal(t, "Weekly Reload", got[0].Title)

	assert.Empty(t, BonusFilter{Type: "freebet"}.Apply(bonuses))
	assert.Len(t, BonusFilter{}.Apply(bonuses), 3)
}
