package domain

// TrustLabel возвращает текстовую оценку надежности для балла 0-10.
// Используется только при заполнении начальных данных: метки из API не пересчитываются.
func TrustLabel(score float64) string {
	switch {
	case score >= 9:
		return "Excellent"
	case score >= 7:
		return "Very Good"
	case score >= 5:
		return "Average"
	case score >= 3:
		return "Poor"
	case score > 0:
		return "Avoid"
	default:
		return DefaultTrustScoreLabel
	}
}
