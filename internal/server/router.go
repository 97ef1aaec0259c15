package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pasteleria/internal/commons"
	"pasteleria/internal/dto"
	inquirycontroller "pasteleria/internal/inquiry/controller"
	ordercontroller "pasteleria/internal/order/controller"
	productcontroller "pasteleria/internal/product/controller"
)

const healthTimeout = 2 * time.Second

func NewRouter(
	db *sql.DB,
	productCtrl *productcontroller.Controller,
	orderCtrl *ordercontroller.OrderController,
	inquiryCtrl *inquirycontroller.InquiryController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", health(db, logger))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productCtrl.ListProducts)
		r.Post("/", productCtrl.CreateProduct)
		r.Get("/{productId}", productCtrl.GetProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderCtrl.ListOrders)
		r.Post("/", orderCtrl.CreateOrder)
		r.Get("/{orderId}", orderCtrl.GetOrder)
		r.Post("/{orderId}/items", orderCtrl.AddItem)
		r.Put("/{orderId}/status", orderCtrl.UpdateStatus)
	})

	r.Route("/inquiries", func(r chi.Router) {
		r.Get("/", inquiryCtrl.ListInquiries)
		r.Post("/", inquiryCtrl.SubmitInquiry)
		r.Get("/{inquiryId}", inquiryCtrl.GetInquiry)
		r.Put("/{inquiryId}/status", inquiryCtrl.UpdateStatus)
	})

	return r
}

func health(db *sql.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			commons.WriteJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"}, logger)
			return
		}

		commons.WriteJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"}, logger)
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					zap.String("traceId", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
