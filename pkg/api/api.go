// Package api exposes the lifetime comparison service over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"orderscope/pkg/compare"
	"orderscope/pkg/lifetime"
	"orderscope/pkg/logger"
	"orderscope/pkg/order"
	ootel "orderscope/pkg/otel"
)

// Handlers serves the order lifetime endpoints.
type Handlers struct {
	svc      *compare.Service
	registry *lifetime.Registry
	log      *logger.Logger
	tracer   trace.Tracer
}

// New creates the handlers. tracer may be nil.
func New(svc *compare.Service, registry *lifetime.Registry, log *logger.Logger, tracer trace.Tracer) *Handlers {
	return &Handlers{svc: svc, registry: registry, log: log, tracer: tracer}
}

// Router builds the HTTP routes.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/orders").Subrouter()
	api.Use(h.scopeMiddleware)
	api.HandleFunc("/compare", h.compareAll).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/info", h.describe).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/orders", h.listOrders).Methods(http.MethodGet)
	api.HandleFunc("/{kind}/orders", h.addOrder).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func (h *Handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// describe reports how a lifetime kind resolves.
// @Summary Lifetime info
// @Description Resolves the kind twice and compares the two instance IDs
// @Produce json
// @Param kind path string true "Lifetime kind" Enums(transient, scoped, singleton)
// @Success 200 {object} compare.Info
// @Failure 400 {object} errorResponse
// @Router /api/orders/{kind}/info [get]
func (h *Handlers) describe(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Describe(r.Context(), mux.Vars(r)["kind"])
	if err != nil {
		h.fail(w, r, "describe", err)
		return
	}
	writeJSON(w, info, http.StatusOK)
}

// listOrders lists the orders of one resolved instance.
// @Summary List orders
// @Produce json
// @Param kind path string true "Lifetime kind" Enums(transient, scoped, singleton)
// @Success 200 {object} compare.Listing
// @Failure 400 {object} errorResponse
// @Router /api/orders/{kind}/orders [get]
func (h *Handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOrders(r.Context(), mux.Vars(r)["kind"])
	if err != nil {
		h.fail(w, r, "list orders", err)
		return
	}
	writeJSON(w, list, http.StatusOK)
}

// addOrder appends an order to one resolved instance.
// @Summary Add order
// @Accept json
// @Produce json
// @Param kind path string true "Lifetime kind" Enums(transient, scoped, singleton)
// @Param order body order.Order true "Order"
// @Success 200 {object} compare.Receipt
// @Failure 400 {object} errorResponse
// @Router /api/orders/{kind}/orders [post]
func (h *Handlers) addOrder(w http.ResponseWriter, r *http.Request) {
	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}
	rcpt, err := h.svc.AddOrder(r.Context(), mux.Vars(r)["kind"], o)
	if err != nil {
		h.fail(w, r, "add order", err)
		return
	}
	writeJSON(w, rcpt, http.StatusOK)
}

// compareAll compares instances across every kind.
// @Summary Compare lifetimes
// @Produce json
// @Success 200 {object} compare.Comparison
// @Router /api/orders/compare [get]
func (h *Handlers) compareAll(w http.ResponseWriter, r *http.Request) {
	cmp, err := h.svc.CompareAll(r.Context())
	if err != nil {
		h.fail(w, r, "compare", err)
		return
	}
	writeJSON(w, cmp, http.StatusOK)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, compare.ErrInvalidTag) {
		writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}
	h.log.Error(r.Context(), op, "error", err)
	writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handlers) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		if h.tracer != nil {
			ctx = ootel.InjectTracing(ctx, h.tracer)
		}
		ctx, span := ootel.AddSpan(ctx, r.Method+" "+r.URL.Path)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// scopeMiddleware opens a lifetime scope for the duration of the request.
func (h *Handlers) scopeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, err := h.registry.NewScope(r.Context())
		if err != nil {
			h.log.Error(r.Context(), "open scope", "error", err)
			writeJSON(w, errorResponse{Error: "internal error"}, http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := scope.Close(); err != nil {
				h.log.Warn(r.Context(), "close scope", "error", err)
			}
		}()
		next.ServeHTTP(w, r.WithContext(lifetime.WithScope(r.Context(), scope)))
	})
}
