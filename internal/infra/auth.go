package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/curelink-health/chat-service/internal/config"
)

const userIDHeader = "X-User-Uuid"

// AuthInterceptorHTTP extracts the authenticated user id injected by the API
// gateway and stores it in the request context. Requests without it are
// rejected before reaching any handler.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "user id is missing"})
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthInterceptorGRPC mirrors AuthInterceptorHTTP for unary gRPC calls,
// reading the user id from incoming metadata.
func AuthInterceptorGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("uuid")
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return nil, status.Error(codes.Unauthenticated, "user id is missing")
	}

	ctx = context.WithValue(ctx, config.KeyUUID, values[0])
	return handler(ctx, req)
}
