package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/AlexZinkM/midnightctl/docs"
	"github.com/AlexZinkM/midnightctl/internal/handler"
)

const requestIDHeader = "X-Request-ID"

// SetupRouter sets up router with handlers
func SetupRouter(svc handler.WalletService, logger *zap.Logger) http.Handler {
	walletHandler := handler.NewWalletHandler(svc, logger.Named("handler"))

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallets", walletHandler.ListWallets)
	mux.HandleFunc("/wallets/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallets/address", walletHandler.GetAddress)
	mux.HandleFunc("/wallets/send", walletHandler.Send)

	mux.HandleFunc("/address/validate", walletHandler.ValidateAddress)
	mux.HandleFunc("/network", walletHandler.Network)

	return withRequestLog(mux, logger.Named("http"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an id and logs its outcome.
func withRequestLog(next http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
