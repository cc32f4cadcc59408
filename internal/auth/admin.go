package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// AdminKeyHeader заголовок, в котором клиент передает секрет администратора
const AdminKeyHeader = "X-Admin-Key"

// ContextKey тип для ключей контекста
type ContextKey string

const (
	// AdminViaKey ключ контекста: каким способом запрос прошел проверку ("key" или "same-origin")
	AdminViaKey ContextKey = "admin_via"
)

const (
	viaKey        = "key"
	viaSameOrigin = "same-origin"
)

// AdminGate пропускает запрос, если секрет из заголовка совпадает с настроенным,
// либо если Referer указывает на тот же хост, что и сам запрос.
type AdminGate struct {
	secret          []byte
	allowSameOrigin bool
	log             *zap.Logger
}

// NewAdminGate создает проверку администратора. Пустой secret не совпадает ни с чем.
func NewAdminGate(secret string, allowSameOrigin bool, log *zap.Logger) *AdminGate {
	return &AdminGate{
		secret:          []byte(secret),
		allowSameOrigin: allowSameOrigin,
		log:             log,
	}
}

// Require middleware для маршрутов, доступных только администратору
func (g *AdminGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		via, ok := g.authorize(r)
		if !ok {
			g.log.Debug("admin gate rejected request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("referer", r.Referer()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), AdminViaKey, via)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *AdminGate) authorize(r *http.Request) (string, bool) {
	if g.keyMatches(r.Header.Get(AdminKeyHeader)) {
		return viaKey, true
	}
	if g.allowSameOrigin && sameOrigin(r) {
		return viaSameOrigin, true
	}
	return "", false
}

func (g *AdminGate) keyMatches(key string) bool {
	if len(g.secret) == 0 || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), g.secret) == 1
}

// sameOrigin сравнивает хост из Referer с заголовком Host запроса.
func sameOrigin(r *http.Request) bool {
	referer := r.Referer()
	if referer == "" || r.Host == "" {
		return false
	}

	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// AdminVia возвращает способ авторизации администратора из контекста
func AdminVia(ctx context.Context) (string, bool) {
	via, ok := ctx.Value(AdminViaKey).(string)
	return via, ok
}
