package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/institute-cms/internal/application/auth"
	"github.com/institute-cms/internal/application/banner"
	"github.com/institute-cms/internal/application/certificate"
	"github.com/institute-cms/internal/application/course"
	"github.com/institute-cms/internal/application/placement"
	"github.com/institute-cms/internal/application/review"
	"github.com/institute-cms/internal/application/user"
	"github.com/institute-cms/internal/config"
	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/transport/http/handler"
	appmiddleware "github.com/institute-cms/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)
	optionalAuth := appmiddleware.OptionalAuth(deps.JWTProvider)
	adminOnly := appmiddleware.RequireRole(domain.RoleAdmin)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:    deps.UserRepo,
		OTPRepo:     deps.OTPRepo,
		Mailer:      deps.Mailer,
		JWTProvider: deps.JWTProvider,
		SiteName:    cfg.SiteName,
		OTPTTL:      cfg.OTPTTL,
	})
	userSvc := user.NewService(user.ServiceDeps{UserRepo: deps.UserRepo})
	courseSvc := course.NewService(course.ServiceDeps{CourseRepo: deps.CourseRepo, Assets: deps.Assets})
	certSvc := certificate.NewService(certificate.ServiceDeps{CertificateRepo: deps.CertificateRepo, Assets: deps.Assets})
	placementSvc := placement.NewService(placement.ServiceDeps{PlacementRepo: deps.PlacementRepo, Assets: deps.Assets})
	bannerSvc := banner.NewService(banner.ServiceDeps{BannerRepo: deps.BannerRepo, Assets: deps.Assets})
	reviewSvc := review.NewService(review.ServiceDeps{ReviewRepo: deps.ReviewRepo})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc, handler.CookieOptions{
		Secure: cfg.IsProduction(),
		MaxAge: deps.JWTProvider.TTL(),
	})
	userH := handler.NewUserHandler(userSvc)
	courseH := handler.NewCourseHandler(courseSvc, cfg.MaxUploadBytes)
	certH := handler.NewCertificateHandler(certSvc, cfg.MaxUploadBytes)
	placementH := handler.NewPlacementHandler(placementSvc, cfg.MaxUploadBytes)
	bannerH := handler.NewBannerHandler(bannerSvc, cfg.MaxUploadBytes)
	reviewH := handler.NewReviewHandler(reviewSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthH.Check)

		r.Route("/auth", func(r chi.Router) {
			r.With(optionalAuth).Post("/register", authH.Register)
			r.Post("/send-otp", authH.SendOTP)
			r.Post("/verify-otp", authH.VerifyOTP)
			r.Post("/login", authH.Login)
			r.Post("/logout", authH.Logout)
			r.With(authMw).Get("/me", authH.Me)

			r.Group(func(r chi.Router) {
				r.Use(authMw, adminOnly)
				r.Get("/users", userH.List)
				r.Put("/make-admin/{id}", userH.MakeAdmin)
				r.Delete("/{id}", userH.Delete)
			})
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseH.List)
			r.Get("/{id}", courseH.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMw, adminOnly)
				r.Post("/addCourse", courseH.Create)
				r.Put("/editCourse/{id}", courseH.Update)
				r.Delete("/delete/{id}", courseH.Delete)
			})
		})

		r.Route("/certificates", func(r chi.Router) {
			r.Get("/", certH.List)
			r.Get("/{id}", certH.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMw, adminOnly)
				r.Post("/addCertificate", certH.Create)
				r.Put("/editCertificate/{id}", certH.Update)
				r.Delete("/delete/{id}", certH.Delete)
			})
		})

		r.Route("/placements", func(r chi.Router) {
			r.Get("/", placementH.List)
			r.Get("/{id}", placementH.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMw, adminOnly)
				r.Post("/addPlacement", placementH.Create)
				r.Put("/editPlacement/{id}", placementH.Update)
				r.Delete("/delete/{id}", placementH.Delete)
			})
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", bannerH.List)
			r.Get("/{id}", bannerH.Get)
			r.Group(func(r chi.Router) {
				r.Use(authMw, adminOnly)
				r.Post("/addBanner", bannerH.Create)
				r.Put("/editBanner/{id}", bannerH.Update)
				r.Delete("/delete/{id}", bannerH.Delete)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewH.List)
			r.Post("/", reviewH.Create)
			r.With(authMw, adminOnly).Delete("/{id}", reviewH.Delete)
		})
	})

	if deps.StaticFS != nil {
		files := http.FileServer(deps.StaticFS)
		for _, kind := range domain.AssetKinds {
			r.Handle("/"+string(kind)+"/*", files)
		}
	}

	return r
}
