package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMissing = errors.New("missing token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Verifier valida credenciais bearer contra um segredo compartilhado.
// Construído uma vez no startup a partir da Config; não lê ambiente em runtime.
type Verifier struct {
	secret []byte
	alg    string
}

func NewVerifier(secret string, alg string) *Verifier {
	return &Verifier{secret: []byte(secret), alg: alg}
}

// Verify decodifica e valida a assinatura do token, retornando as claims
// sem nenhuma interpretação adicional. Checagem de role fica pra depois:
// if claims["role"] != "admin" { ... }
func (v *Verifier) Verify(tokenString string) (jwt.MapClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenMissing
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{v.alg}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// TokenFromHeader extrai a credencial de um header "Authorization: Bearer <token>"
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrTokenMissing
	}
	return parts[1], nil
}
