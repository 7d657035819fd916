package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/tmaxstore/catalog-admin/app/auth"
	"github.com/tmaxstore/catalog-admin/app/configs"
	"github.com/tmaxstore/catalog-admin/app/handlers"
	adminhandlers "github.com/tmaxstore/catalog-admin/app/handlers/admin"
	"github.com/tmaxstore/catalog-admin/app/middlewares"
	"github.com/tmaxstore/catalog-admin/app/repositories"
	"github.com/tmaxstore/catalog-admin/app/services"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys, themeSvc *services.ThemeService) http.Handler {
	rnd := render.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	bannerRepo := repositories.NewBannerRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	inventorySvc := services.NewInventoryService(productRepo, settingRepo)
	orderSvc := services.NewOrderService(orderRepo)
	bannerSvc := services.NewBannerService(bannerRepo, services.ParseExclusivityMode(env.BannerExclusivity))
	uploader := services.NewLocalImageUploader(env.UploadDir, env.UploadBaseURL)

	idp := auth.NewSessionIdentityProvider(keys.AuthKey, keys.EncKey)
	resolver := auth.NewResolver(env.AdminEmailDomain)

	handler := adminhandlers.NewAdminHandler(rnd, validate, productRepo, inventorySvc, orderSvc, bannerSvc, themeSvc, uploader)
	sessionHandler := handlers.NewSessionHandler(rnd, idp, resolver)

	router := mux.NewRouter()

	router.HandleFunc("/me", sessionHandler.Me).Methods("GET")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(idp, resolver, rnd))

	adminRouter.HandleFunc("/dashboard/stats", handler.GetDashboardStats).Methods("GET")

	adminRouter.HandleFunc("/products", handler.GetProducts).Methods("GET")
	adminRouter.HandleFunc("/products", handler.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/export", handler.ExportProducts).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", handler.GetProduct).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", handler.UpdateProduct).Methods("PATCH")
	adminRouter.HandleFunc("/products/{id}", handler.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/orders", handler.GetOrders).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", handler.GetOrder).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}/status", handler.UpdateOrderStatus).Methods("PUT")
	adminRouter.HandleFunc("/orders/{id}", handler.DeleteOrder).Methods("DELETE")

	adminRouter.HandleFunc("/customers", handler.GetCustomers).Methods("GET")

	adminRouter.HandleFunc("/banners", handler.GetBanners).Methods("GET")
	adminRouter.HandleFunc("/banners", handler.CreateBanner).Methods("POST")
	adminRouter.HandleFunc("/banners/{id}", handler.UpdateBanner).Methods("PATCH")
	adminRouter.HandleFunc("/banners/{id}/activate", handler.SetBannerActive).Methods("PUT")
	adminRouter.HandleFunc("/banners/{id}/deactivate", handler.DeactivateBanner).Methods("PUT")
	adminRouter.HandleFunc("/banners/{id}", handler.DeleteBanner).Methods("DELETE")

	adminRouter.HandleFunc("/settings", handler.GetSettings).Methods("GET")
	adminRouter.HandleFunc("/settings", handler.UpdateSettings).Methods("PUT")
	adminRouter.HandleFunc("/settings/theme", handler.ToggleTheme).Methods("POST")

	adminRouter.HandleFunc("/uploads", handler.UploadImage).Methods("POST")

	router.PathPrefix(env.UploadBaseURL + "/").Handler(
		http.StripPrefix(env.UploadBaseURL+"/", http.FileServer(http.Dir(env.UploadDir))))

	csrfMiddleware := csrf.Protect(keys.AuthKey, csrf.Secure(env.AppEnv == "production"))
	return csrfMiddleware(router)
}
