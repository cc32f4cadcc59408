// Package catalog filters and orders public catalog listings.
// Lists are small (tens of rows), so filtering runs over the repository result.
package catalog

import (
	"BetGuide-Backend/internal/domain"
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Trust tiers accepted by the "trust" query parameter.
const (
	TrustAll       = "all"
	TrustExcellent = "excellent" // >= 9
	TrustGood      = "good"      // 7..9
	TrustAverage   = "average"   // 5..7
	TrustPoor      = "poor"      // < 5
)

// Sort orders accepted by the "sort" query parameter.
const (
	SortRank   = "rank"   // rank ascending
	SortRating = "rating" // overall rating descending
	SortTrust  = "trust"  // trust score descending
	SortName   = "name"   // name ascending
)

// ParamError сообщает о недопустимом значении параметра запроса.
type ParamError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// BookmakerFilter описывает поиск, фильтр по надежности и сортировку каталога.
type BookmakerFilter struct {
	Search string
	Trust  string
	Sort   string
}

// ParseBookmakerFilter читает search, trust и sort. Пустые значения дают
// фильтр по умолчанию: без поиска, все уровни, сортировка по rank.
func ParseBookmakerFilter(q url.Values) (BookmakerFilter, error) {
	f := BookmakerFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Trust:  strings.ToLower(strings.TrimSpace(q.Get("trust"))),
		Sort:   strings.ToLower(strings.TrimSpace(q.Get("sort"))),
	}
	if f.Trust == "" {
		f.Trust = TrustAll
	}
	if f.Sort == "" {
		f.Sort = SortRank
	}

	trustTiers := []string{TrustAll, TrustExcellent, TrustGood, TrustAverage, TrustPoor}
	if !slices.Contains(trustTiers, f.Trust) {
		return BookmakerFilter{}, &ParamError{Param: "trust", Value: f.Trust, Allowed: trustTiers}
	}
	sorts := []string{SortRank, SortRating, SortTrust, SortName}
	if !slices.Contains(sorts, f.Sort) {
		return BookmakerFilter{}, &ParamError{Param: "sort", Value: f.Sort, Allowed: sorts}
	}
	return f, nil
}

// IsDefault сообщает, что фильтр не меняет порядок и состав списка.
func (f BookmakerFilter) IsDefault() bool {
	return f.Search == "" && (f.Trust == "" || f.Trust == TrustAll) && (f.Sort == "" || f.Sort == SortRank)
}

// Apply возвращает новый срез; исходный не изменяется.
func (f BookmakerFilter) Apply(bookmakers []*domain.Bookmaker) []*domain.Bookmaker {
	out := make([]*domain.Bookmaker, 0, len(bookmakers))
	for _, b := range bookmakers {
		if matchesText(f.Search, b.Name, b.Description) && matchesTrust(f.Trust, b.TrustScore) {
			out = append(out, b)
		}
	}

	switch f.Sort {
	case SortRating:
		slices.SortStableFunc(out, func(a, b *domain.Bookmaker) int { return cmp.Compare(b.OverallRating, a.OverallRating) })
	case SortTrust:
		slices.SortStableFunc(out, func(a, b *domain.Bookmaker) int { return cmp.Compare(b.TrustScore, a.TrustScore) })
	case SortName:
		slices.SortStableFunc(out, func(a, b *domain.Bookmaker) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		slices.SortStableFunc(out, func(a, b *domain.Bookmaker) int { return cmp.Compare(a.Rank, b.Rank) })
	}
	return out
}

func matchesTrust(tier string, score float64) bool {
	switch tier {
	case TrustExcellent:
		return score >= 9
	case TrustGood:
		return score >= 7 && score < 9
	case TrustAverage:
		return score >= 5 && score < 7
	case TrustPoor:
		return score < 5
	default:
		return true
	}
}

// BonusFilter описывает поиск и фильтр по типу бонуса.
type BonusFilter struct {
	Search string
	Type   string
}

// ParseBonusFilter читает search и type. Тип бонуса открытый, поэтому любое
// непустое значение допустимо; "all" отключает фильтр.
func ParseBonusFilter(q url.Values) BonusFilter {
	f := BonusFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Type:   strings.TrimSpace(q.Get("type")),
	}
	if strings.EqualFold(f.Type, TrustAll) {
		f.Type = ""
	}
	return f
}

// Apply возвращает бонусы, подходящие под фильтр, в исходном порядке.
func (f BonusFilter) Apply(bonuses []*domain.Bonus) []*domain.Bonus {
	out := make([]*domain.Bonus, 0, len(bonuses))
	for _, b := range bonuses {
		if f.Type != "" && b.BonusType != f.Type {
			continue
		}
		if matchesText(f.Search, b.Title, b.Description) {
			out = append(out, b)
		}
	}
	return out
}

func matchesText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
