package tx

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/grpc"
)

type key string

const KeyTx = key("tx")

// DBRepo is the transaction-capable slice of the repository. WithTx runs
// cb inside a database transaction carried through the context.
type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxExecute runs cb inside the request's transaction scope. The repo handle
// is planted in the context by the HTTP middleware or gRPC interceptor.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction context configured")
	}
	return t.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxMiddlewareGRPC(repo DBRepo) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
		return handler(ctx, req)
	}
}
