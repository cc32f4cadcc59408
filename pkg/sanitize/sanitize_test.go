package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_HTML(t *testing.T) {
	s := New()

	tests := []struct {
		name     string
		in       string
		want     string
		excludes []string
	}{
		{
			name: "script removed with its content",
			in:   "<script>alert(1)</script><p>hi</p>",
			want: "<p>hi</p>",
		},
		{
			name: "headings kept, inline style stripped",
			in:   `<h2 style="color:red">Best crypto bookmakers</h2>`,
			want: "<h2>Best crypto bookmakers</h2>",
		},
		{
			name: "image keeps safe attributes only",
			in:   `<img src="https://cdn.example.com/a.png" alt="logo" width="120" height="40" onerror="alert(1)">`,
			want: `<img src="https://cdn.example.com/a.png" alt="logo" width="120" height="40">`,
		},
		{
			name: "relative links allowed",
			in:   `<a href="/bookmakers/stake">Stake</a>`,
			want: `<a href="/bookmakers/stake">Stake</a>`,
		},
		{
			name:     "javascript urls dropped",
			in:       `<a href="javascript:alert(1)">click</a>`,
			excludes: []string{"javascript:", "alert"},
		},
		{
			name:     "iframes and event handlers dropped",
			in:       `<iframe src="https://evil.example"></iframe><div onclick="steal()">text</div>`,
			want:     "<div>text</div>",
			excludes: []string{"iframe", "onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.HTML(tt.in)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, got, bad)
			}
		})
	}
}

func TestSanitizer_Idempotent(t *testing.T) {
	s := New()
	in := `<p>Deposit <strong>0.01 BTC</strong></p><img src="x.png" alt="x"><script>x()</script>`

	once := s.HTML(in)
	assert.Equal(t, once, s.HTML(once))
}
