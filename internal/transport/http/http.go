package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/pollosrrj/pos/internal/service/models/order"
	"github.com/pollosrrj/pos/internal/service/models/payment"
	"github.com/pollosrrj/pos/internal/service/models/status"
	"github.com/pollosrrj/pos/internal/service/services/reportsvc"
	clearstatus "github.com/pollosrrj/pos/internal/transport/http/clear_status"
	createorder "github.com/pollosrrj/pos/internal/transport/http/create_order"
	deleteorder "github.com/pollosrrj/pos/internal/transport/http/delete_order"
	deliverorder "github.com/pollosrrj/pos/internal/transport/http/deliver_order"
	getorder "github.com/pollosrrj/pos/internal/transport/http/get_order"
	listorders "github.com/pollosrrj/pos/internal/transport/http/list_orders"
	menuoptions "github.com/pollosrrj/pos/internal/transport/http/menu_options"
	paycredit "github.com/pollosrrj/pos/internal/transport/http/pay_credit"
	"github.com/pollosrrj/pos/internal/transport/http/report"
	updateorder "github.com/pollosrrj/pos/internal/transport/http/update_order"
	"github.com/pollosrrj/pos/pkg/http/middleware/trace"
	"github.com/pollosrrj/pos/pkg/logger"
)

type orderService interface {
	Create(ctx context.Context, o order.Order) (order.Order, error)
	Update(ctx context.Context, id int64, o order.Order) error
	MarkDelivered(ctx context.Context, id int64, m payment.Method) (order.Order, error)
	PayCredit(ctx context.Context, id int64, m payment.Method) (order.Order, error)
	Delete(ctx context.Context, id int64) error
	ClearByStatus(ctx context.Context, st status.Status) error
	ByID(ctx context.Context, id int64) (order.Order, error)
	ListActive(ctx context.Context) ([]order.Order, error)
	ByStatus(ctx context.Context, st status.Status) ([]order.Order, error)
}

type reportService interface {
	Run(ctx context.Context, f reportsvc.Filter) (reportsvc.Result, error)
	DeleteMatching(ctx context.Context, f reportsvc.Filter) error
}

type HTTPTransport struct {
	server    *http.Server
	router    *chi.Mux
	orderSvc  orderService
	reportSvc reportService
}

func NewHTTPTransport(orderSvc orderService, reportSvc reportService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:    server,
		router:    router,
		orderSvc:  orderSvc,
		reportSvc: reportSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuoptions.Options)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Delete("/", h.clearStatus)
			r.Get("/{id}", h.getOrder)
			r.Put("/{id}", h.updateOrder)
			r.Delete("/{id}", h.deleteOrder)
			r.Post("/{id}/deliver", h.deliverOrder)
			r.Post("/{id}/pay", h.payCredit)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/run", h.runReport)
			r.Post("/delete", h.deleteReportMatches)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.Create(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateOrder(w http.ResponseWriter, r *http.Request) {
	updateorder.Update(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.Delete(w, r, h.orderSvc)
}

func (h *HTTPTransport) deliverOrder(w http.ResponseWriter, r *http.Request) {
	deliverorder.Deliver(w, r, h.orderSvc)
}

func (h *HTTPTransport) payCredit(w http.ResponseWriter, r *http.Request) {
	paycredit.Pay(w, r, h.orderSvc)
}

func (h *HTTPTransport) clearStatus(w http.ResponseWriter, r *http.Request) {
	clearstatus.Clear(w, r, h.orderSvc)
}

func (h *HTTPTransport) runReport(w http.ResponseWriter, r *http.Request) {
	report.Run(w, r, h.reportSvc)
}

func (h *HTTPTransport) deleteReportMatches(w http.ResponseWriter, r *http.Request) {
	report.DeleteMatching(w, r, h.reportSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
