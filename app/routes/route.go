package routes

import (
	"net/http"

	"github.com/fariowear/go-storefront/app/configs"
	"github.com/fariowear/go-storefront/app/handlers"
	"github.com/fariowear/go-storefront/app/middlewares"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/fariowear/go-storefront/app/services"
	"github.com/fariowear/go-storefront/app/utils/renderer"
	"github.com/fariowear/go-storefront/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
)

func NewRouter(
	env configs.ENV,
	keys *configs.SessionKeys,
	productRepo repositories.ProductRepositoryImpl,
	leadRepo repositories.LeadRepositoryImpl,
	submitter services.LeadSubmitter,
) http.Handler {
	render := renderer.New()
	validate := validator.New()
	favStore := sessions.NewCookieFavoriteStore(keys.AuthKey, keys.EncKey)

	homeHandler := handlers.NewHomeHandler(render, productRepo)
	productHandler := handlers.NewProductHandler(productRepo, favStore, render, services.DefaultCarouselInterval)
	leadHandler := handlers.NewLeadHandler(submitter, validate)
	legalHandler := handlers.NewLegalHandler(render)
	adminHandler := handlers.NewAdminHandler(render, leadRepo)

	router := mux.NewRouter()
	router.Use(middlewares.FavoritesCountMiddleware(favStore))

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")
	router.HandleFunc("/products/{slug}/carousel", productHandler.Carousel).Methods("GET")
	router.HandleFunc("/favorites/{id:[0-9]+}", productHandler.ToggleFavorite).Methods("POST")
	router.HandleFunc("/favorites/clear", productHandler.ClearFavorites).Methods("POST")
	router.HandleFunc("/contact", leadHandler.Contact).Methods("POST")
	router.HandleFunc("/waitlist", leadHandler.Waitlist).Methods("POST")
	router.HandleFunc("/legal/{page}", legalHandler.Show).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.BasicAuthMiddleware(env.AdminUsername, env.AdminPasswordHash))
	admin.HandleFunc("/leads", adminHandler.Leads).Methods("GET")

	csrfMiddleware := csrf.Protect(
		keys.AuthKey[:32],
		csrf.Secure(env.AppEnv == "production"),
		csrf.Path("/"),
	)

	return csrfMiddleware(router)
}
