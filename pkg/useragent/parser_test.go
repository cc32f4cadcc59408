package useragent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParser_Parse(t *testing.T) {
	p := New("", zap.NewNop())

	tests := []struct {
		name       string
		ua         string
		deviceType string
		browser    string
		os         string
	}{
		{
			name:       "desktop chrome",
			ua:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			deviceType: DeviceDesktop,
			browser:    "Chrome",
			os:         "Windows",
		},
		{
			name:       "iphone safari",
			ua:         "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			deviceType: DeviceMobile,
			browser:    "Mobile Safari",
			os:         "iOS",
		},
		{
			name:       "ipad",
			ua:         "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			deviceType: DeviceTablet,
			os:         "iOS",
		},
		{
			name:       "googlebot",
			ua:         "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			deviceType: DeviceBot,
		},
		{
			name:       "empty",
			ua:         "",
			deviceType: Unknown,
			browser:    Unknown,
			os:         Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := p.Parse(tt.ua)
			assert.Equal(t, tt.deviceType, info.DeviceType)
			if tt.browser != "" {
				assert.Equal(t, tt.browser, info.Browser)
			}
			if tt.os != "" {
				assert.Equal(t, tt.os, info.OS)
			}
		})
	}
}

func TestNew_FallsBackOnBadRegexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexes.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("user_agent_parsers: [this is: not valid"), 0o600))

	for _, p := range []*Parser{
		New(path, zap.NewNop()),
		New(filepath.Join(t.TempDir(), "missing.yaml"), zap.NewNop()),
	} {
		assert.NotNil(t, p.parser)
		assert.Equal(t, DeviceDesktop, p.Parse("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0").DeviceType)
	}
}
