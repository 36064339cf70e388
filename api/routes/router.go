package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Henry881-hack/corries-shop/api/controllers"
	"github.com/Henry881-hack/corries-shop/api/middleware"
	"github.com/Henry881-hack/corries-shop/pkg/config"
	"github.com/Henry881-hack/corries-shop/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	catalogService controllers.ProductCatalog,
	userService controllers.UserDirectory,
	sessionService controllers.SessionService,
	cartService controllers.CartService,
	paymentService controllers.PaymentService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", controllers.AuthSignup(userService, sessionService, logg))
			r.Post("/login", controllers.AuthLogin(userService, sessionService, logg))
			r.Post("/logout", controllers.AuthLogout(sessionService, logg))
			r.Get("/me", controllers.AuthMe(sessionService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/search", controllers.ProductSearch(catalogService, logg))
			r.Get("/{productId}", controllers.ProductDetail(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Get("/count", controllers.CartCount(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, sessionService, logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(paymentService, cartService, logg))
	})

	return r
}
