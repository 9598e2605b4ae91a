package grpcapi

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/radieske/eventos-service/internal/eventos/auth"
)

// AuthUnaryInterceptor exige a mesma credencial bearer da API REST,
// carregada como metadata "authorization" da chamada. Acesso a eventos
// é autenticado igual nas duas interfaces.
func AuthUnaryInterceptor(v *auth.Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		token, err := auth.TokenFromHeader(values[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing authorization metadata")
		}

		if _, err := v.Verify(token); err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}
