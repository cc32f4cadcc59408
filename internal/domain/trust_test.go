package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "Excellent"},
		{9, "Excellent"},
		{8.9, "Very Good"},
		{7, "Very Good"},
		{6.5, "Average"},
		{5, "Average"},
		{4.2, "Poor"},
		{3, "Poor"},
		{1.5, "Avoid"},
		{0, "Unrated"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TrustLabel(tt.score), "score %.1f", tt.score)
	}
}
