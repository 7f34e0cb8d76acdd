package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adsight/bi-ads-api/pkg/apiErrors"
)

// AdminAuth valida o token de serviço HS256 das rotas administrativas
// (disparo manual de sincronização, invalidação e flush de cache).
// Rotas de leitura e o healthcheck não passam por aqui.
func AdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization ausente", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer obrigatório", nil)
				return
			}

			claims, err := validateServiceToken(tokenString, secret)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			if role, _ := claims["role"].(string); role != "admin" {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Privilégios insuficientes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validateServiceToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidas")
	}

	return claims, nil
}
