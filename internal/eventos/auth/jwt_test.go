package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerify(t *testing.T) {
	v := NewVerifier(testSecret, "HS256")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name: "valid token",
			token: signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name: "token without exp is still valid",
			token: signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-1",
			}),
		},
		{
			name: "expired token",
			token: signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantErr: ErrTokenExpired,
		},
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantErr: ErrTokenInvalid,
		},
		{
			name: "algorithm not allowed",
			token: signToken(t, testSecret, jwt.SigningMethodHS384, jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "malformed token",
			token:   "not-a-jwt",
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "empty credential",
			token:   "",
			wantErr: ErrTokenMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", claims["sub"])
		})
	}
}

func TestVerifyReturnsClaimsOpaquely(t *testing.T) {
	v := NewVerifier(testSecret, "HS256")

	// role não é interpretado: qualquer claim passa, só a assinatura conta
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": "nobody",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "nobody", claims["role"])
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokenFromHeader(tt.header)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrTokenMissing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
