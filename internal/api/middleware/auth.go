package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	authTokenKey contextKey = "authToken"

	bearerPrefix = "Bearer "
)

// Auth проверяет Bearer JWT и кладет userID и исходный токен в контекст
// Токен дальше проксируется в вызовы booking engine как есть
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respondUnauthorized(w, "требуется авторизация")
				return
			}
			rawToken := strings.TrimPrefix(header, bearerPrefix)

			userID, err := parseUserID(rawToken, secret)
			if err != nil {
				respondUnauthorized(w, "недействительный токен")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, authTokenKey, rawToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseUserID валидирует подпись токена и извлекает идентификатор пользователя
func parseUserID(rawToken, secret string) (int64, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is not valid")
	}

	sub, ok := claims["sub"]
	if !ok {
		return 0, fmt.Errorf("token has no sub claim")
	}

	switch v := sub.(type) {
	case float64:
		return int64(v), nil
	case string:
		var id int64
		if _, err := fmt.Sscanf(v, "%d", &id); err != nil {
			return 0, fmt.Errorf("sub claim is not numeric: %v", err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("unsupported sub claim type %T", sub)
	}
}

// GetUserID извлекает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetAuthToken извлекает исходный JWT из контекста запроса
func GetAuthToken(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey).(string)
	return token
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
