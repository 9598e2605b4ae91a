package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/radieske/eventos-service/internal/eventos/auth"
)

type ctxKey int

const claimsKey ctxKey = 0

// requireAuth valida a credencial bearer em toda rota de recurso.
// Expirado e inválido retornam o mesmo 401, com mensagens distintas.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		token, err := auth.TokenFromHeader(header)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		claims, err := s.auth.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, authMessage(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// authMessage traduz a classificação da falha de autenticação em mensagem estável
func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, auth.ErrTokenMissing):
		return "missing authorization header"
	default:
		return "invalid token"
	}
}

// ClaimsFromContext retorna as claims do token validado pelo middleware
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims, ok
}
