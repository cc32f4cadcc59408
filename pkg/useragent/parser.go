// Package useragent classifies visitor User-Agent strings for click analytics.
package useragent

import (
	"fmt"
	"os"
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
	"go.uber.org/zap"
)

// Device types reported by Parse.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	Unknown       = "unknown"
)

var (
	botMarkers = []string{
		"googlebot", "bingbot", "slurp", "duckduckbot", "baiduspider",
		"yandexbot", "facebookexternalhit", "twitterbot", "linkedinbot",
		"whatsapp", "telegram", "skypeuripreview", "bot", "crawler",
		"spider", "scraper", "headlesschrome",
	}
	tabletDevices = []string{"ipad", "tablet", "kindle", "surface"}
	mobileDevices = []string{"iphone", "android", "blackberry", "windows phone", "mobile", "phone"}
	mobileOS      = []string{"ios", "android", "windows phone", "blackberry os", "firefox os", "sailfish os"}
	desktopOS     = []string{"windows", "mac os x", "macos", "linux", "ubuntu", "chrome os", "freebsd", "openbsd", "netbsd"}
)

// Parser wraps uap-go with device type detection
type Parser struct {
	parser *uaparser.Parser
	log    *zap.Logger
}

// DeviceInfo represents parsed device information
type DeviceInfo struct {
	DeviceType string // desktop, mobile, tablet, bot, unknown
	Browser    string // Chrome, Firefox, Safari, etc.
	OS         string // Windows, iOS, Android, etc.
}

// New creates a parser from a uap-core regexes.yaml file.
// An empty or unreadable path falls back to the definitions bundled with uap-go.
func New(regexesPath string, log *zap.Logger) *Parser {
	if regexesPath != "" {
		parser, err := fromFile(regexesPath)
		if err == nil {
			log.Info("User-Agent parser initialized", zap.String("regexes_file", regexesPath))
			return &Parser{parser: parser, log: log}
		}
		log.Warn("failed to load User-Agent regexes, using bundled definitions", zap.Error(err))
	}

	return &Parser{parser: uaparser.NewFromSaved(), log: log}
}

func fromFile(path string) (*uaparser.Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regexes file: %w", err)
	}

	parser, err := uaparser.NewFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create User-Agent parser: %w", err)
	}
	return parser, nil
}

// Parse classifies a User-Agent string. Empty input yields "unknown" everywhere.
func (p *Parser) Parse(userAgent string) DeviceInfo {
	if strings.TrimSpace(userAgent) == "" {
		return DeviceInfo{DeviceType: Unknown, Browser: Unknown, OS: Unknown}
	}

	client := p.parser.Parse(userAgent)
	info := DeviceInfo{
		DeviceType: deviceType(client, userAgent),
		Browser:    family(client.UserAgent.Family),
		OS:         family(client.Os.Family),
	}

	p.log.Debug("parsed User-Agent",
		zap.String("device_type", info.DeviceType),
		zap.String("browser", info.Browser),
		zap.String("os", info.OS),
	)
	return info
}

func deviceType(client *uaparser.Client, userAgent string) string {
	ua := strings.ToLower(userAgent)
	uaFamily := strings.ToLower(client.UserAgent.Family)
	deviceFamily := strings.ToLower(client.Device.Family)
	osFamily := strings.ToLower(client.Os.Family)

	if client.Device.Family == "Spider" || containsAny(uaFamily, botMarkers) || containsAny(ua, botMarkers) {
		return DeviceBot
	}

	if deviceFamily != "" && deviceFamily != "other" {
		if containsAny(deviceFamily, tabletDevices) {
			return DeviceTablet
		}
		if containsAny(deviceFamily, mobileDevices) {
			return DeviceMobile
		}
	}

	if containsAny(osFamily, mobileOS) {
		// iPad reports iOS; Android tablets omit "Mobile"
		if strings.Contains(osFamily, "ios") && strings.Contains(ua, "ipad") {
			return DeviceTablet
		}
		if strings.Contains(osFamily, "android") && !strings.Contains(ua, "mobile") {
			return DeviceTablet
		}
		return DeviceMobile
	}

	if containsAny(osFamily, desktopOS) {
		return DeviceDesktop
	}
	return Unknown
}

func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func family(f string) string {
	if f == "" || f == "Other" {
		return Unknown
	}
	return f
}
