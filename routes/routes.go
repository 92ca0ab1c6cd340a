package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourist-safety/controllers"
	"tourist-safety/handler"
	"tourist-safety/middleware"
)

type Handlers struct {
	Auth     *controllers.AuthController
	Profile  *controllers.ProfileController
	Contact  *controllers.ContactController
	Place    *controllers.PlaceController
	Incident *controllers.IncidentController
	Admin    *controllers.AdminController
}

type Options struct {
	ServiceName string
	JWTSecret   string
	// UploadDir is served under /uploads when not empty.
	UploadDir string
	// LoginLimit wraps the login routes when not nil.
	LoginLimit gin.HandlerFunc
	Metrics    *middleware.Metrics
}

func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", gin.WrapF(handler.Status(opts.ServiceName)))
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.UploadDir != "" {
		router.Static("/uploads", opts.UploadDir)
	}

	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if opts.LoginLimit == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{opts.LoginLimit, handler}
	}

	auth := router.Group("/auth")
	{
		auth.POST("/tourist/register", h.Auth.RegisterTourist)
		auth.POST("/authority/register", h.Auth.RegisterAuthority)
		auth.POST("/tourist/login", limited(h.Auth.LoginTourist)...)
		auth.POST("/authority/login", limited(h.Auth.LoginAuthority)...)
		auth.POST("/admin/login", limited(h.Auth.AdminLogin)...)
	}

	router.GET("/profile/tourist", h.Profile.GetTouristProfile)
	router.PUT("/profile/tourist", h.Profile.UpdateTouristProfile)
	router.GET("/profile/authority", h.Profile.GetAuthorityProfile)
	router.PUT("/profile/authority", h.Profile.UpdateAuthorityProfile)
	router.GET("/profiles", h.Profile.ListTourists)
	router.GET("/profiles/:id", h.Profile.GetTourist)

	router.GET("/contacts", h.Contact.ListContacts)
	router.POST("/contacts", h.Contact.CreateContact)
	router.GET("/contacts/:id", h.Contact.GetContact)
	router.PATCH("/contacts/:id", h.Contact.UpdateContact)
	router.DELETE("/contacts/:id", h.Contact.DeleteContact)

	router.POST("/geofence", h.Place.Geofence)
	router.GET("/geocode/reverse", h.Place.ReverseGeocode)
	router.GET("/places", h.Place.ListPlaces)
	router.GET("/places/nearby", h.Place.NearbyPlaces)
	router.GET("/places/:id", h.Place.GetPlace)

	router.POST("/incidents/panic", h.Incident.Panic)
	router.GET("/alerts", h.Incident.ListAlerts)
	router.POST("/incidents", h.Incident.ReportIncident)
	router.GET("/incidents", h.Incident.ListIncidents)
	router.GET("/incidents/:id", h.Incident.GetIncident)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(opts.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/authorities", h.Admin.ListAuthorities)
		admin.POST("/authorities/verify", h.Admin.VerifyAuthorities)
		admin.DELETE("/tourists/:id", h.Admin.DeleteTourist)

		admin.POST("/places", h.Place.CreatePlace)
		admin.PATCH("/places/:id", h.Place.UpdatePlace)
		admin.DELETE("/places/:id", h.Place.DeletePlace)

		admin.PATCH("/incidents/:id/resolve", h.Incident.ResolveIncident)
	}
}
