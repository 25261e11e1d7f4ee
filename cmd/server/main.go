package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mktplace/orderboard/internal/board"
	"github.com/mktplace/orderboard/internal/config"
	"github.com/mktplace/orderboard/internal/refprice"
)

type registerOrderRequest struct {
	UserID       string          `json:"user_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerKilo int64           `json:"price_per_kilo"`
	OrderType    string          `json:"order_type"`
}

type registerOrderResponse struct {
	OrderID   string `json:"order_id"`
	RequestID string `json:"request_id"`
}

type orderView struct {
	UserID       string          `json:"user_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerKilo int64           `json:"price_per_kilo"`
	OrderType    string          `json:"order_type"`
}

type referenceView struct {
	Metal        string  `json:"metal"`
	Currency     string  `json:"currency"`
	PricePerKilo float64 `json:"price_per_kilo"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.EncoderConfig.TimeKey = "ts"
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := board.NewRegistry()

	cache := refprice.NewCache()
	feed := refprice.NewQuoteAPIFeed(cfg.QuoteAPIURL)
	go refprice.StartUpdater(ctx, feed, cache, cfg.RefMetals, cfg.RefreshInterval, logger)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: newRouter(reg, cache, logger)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newRouter(reg *board.Registry, cache *refprice.Cache, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Hygiene stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Second))

	writeProblem := func(w http.ResponseWriter, r *http.Request, code int, title, detail string) {
		reqID := middleware.GetReqID(r.Context())
		w.Header().Set("Content-Type", "application/problem+json")
		w.Header().Set("X-Request-ID", reqID)
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":      title,
			"status":     code,
			"detail":     detail,
			"instance":   r.URL.Path,
			"request_id": reqID,
		})
	}

	writeJSON := func(w http.ResponseWriter, r *http.Request, code int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}

	// POST /orders
	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req registerOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, r, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}

		order, err := toOrder(req)
		if err != nil {
			writeProblem(w, r, http.StatusBadRequest, "validation_error", err.Error())
			return
		}

		id, err := reg.Register(order)
		if err != nil {
			writeProblem(w, r, http.StatusInternalServerError, "registry_error", err.Error())
			return
		}

		ordersRegistered.Inc()
		liveOrders.Set(float64(reg.Len()))
		logger.Info("order registered",
			zap.String("order_id", id.String()),
			zap.String("side", string(order.Side())),
			zap.Int64("price_per_kilo", order.PricePerKilo()))

		w.Header().Set("Location", "/orders/"+id.String())
		writeJSON(w, r, http.StatusCreated, registerOrderResponse{
			OrderID:   id.String(),
			RequestID: middleware.GetReqID(r.Context()),
		})
	})

	// DELETE /orders/{id}
	// Cancellation is idempotent: unknown or malformed ids cannot refer
	// to a live order, so both are a successful no-op.
	r.Delete("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
			reg.Cancel(id)
			ordersCancelled.Inc()
			liveOrders.Set(float64(reg.Len()))
		}
		w.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	// GET /board
	r.Get("/board", func(w http.ResponseWriter, r *http.Request) {
		boardsComputed.Inc()
		writeJSON(w, r, http.StatusOK, reg.Board())
	})

	// GET /orders
	r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		orders := reg.Orders()
		views := make([]orderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, orderView{
				UserID:       o.UserID(),
				Quantity:     o.Quantity(),
				PricePerKilo: o.PricePerKilo(),
				OrderType:    string(o.Side()),
			})
		}
		writeJSON(w, r, http.StatusOK, views)
	})

	// GET /reference?metal=silver
	r.Get("/reference", func(w http.ResponseWriter, r *http.Request) {
		metal := r.URL.Query().Get("metal")
		if metal == "" {
			metal = "silver"
		}
		price, ok := cache.Get(metal)
		if !ok {
			writeProblem(w, r, http.StatusServiceUnavailable, "no_reference_price",
				"no reference price cached yet for "+metal)
			return
		}
		writeJSON(w, r, http.StatusOK, referenceView{
			Metal:        metal,
			Currency:     "GBP",
			PricePerKilo: price,
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func toOrder(req registerOrderRequest) (*board.Order, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.OrderType = strings.TrimSpace(req.OrderType)

	var side board.Side
	if req.OrderType != "" {
		parsed, err := board.ParseSide(strings.ToUpper(req.OrderType))
		if err != nil {
			return nil, err
		}
		side = parsed
	}

	return board.NewOrder(req.UserID, req.Quantity, req.PricePerKilo, side)
}
