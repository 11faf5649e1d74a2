package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/masjid-bouraoui/masjid-api/internal/middleware"
	"github.com/masjid-bouraoui/masjid-api/internal/models"
	"github.com/masjid-bouraoui/masjid-api/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Khutbah      *KhutbahHandler
	Recitations  *RecitationHandler
	Books        *BookHandler
	Library      *LibraryHandler
	Courses      *CourseHandler
	Contact      *ContactHandler
	Newsletter   *NewsletterHandler
	Broadcast    *BroadcastHandler
	LibraryTimes *LibraryTimesHandler
	Prayer       *PrayerHandler
	Quran        *QuranHandler
}

// RegisterRoutes mounts all API routes under the given prefix. Content
// mutation requires an authenticated admin; account management is restricted
// to superadmins; public pages read without credentials.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, authSvc *service.AuthService) {
	api := r.Group(prefix)

	authed := middleware.JWT(authSvc)
	adminOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin)
	superOnly := middleware.RequireRoles(models.RoleSuperAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/superadmin", h.Users.CreateSuperAdmin)
		auth.POST("/admin", authed, superOnly, h.Users.CreateAdmin)
		auth.GET("/users", authed, superOnly, h.Users.List)
		auth.DELETE("/users/:id", authed, superOnly, h.Users.Delete)
	}

	khutbah := api.Group("/khutbah")
	{
		khutbah.GET("", h.Khutbah.List)
		khutbah.POST("", authed, adminOnly, h.Khutbah.Create)
		khutbah.DELETE("/:id", authed, adminOnly, h.Khutbah.Delete)
		khutbah.PATCH("/:id/toggle-main", authed, adminOnly, h.Khutbah.ToggleFeatured)
	}

	recitations := api.Group("/recitations")
	{
		recitations.GET("", h.Recitations.List)
		recitations.POST("", authed, adminOnly, h.Recitations.Create)
		recitations.DELETE("/:id", authed, adminOnly, h.Recitations.Delete)
		recitations.PATCH("/:id/toggle-main", authed, adminOnly, h.Recitations.ToggleFeatured)
	}

	books := api.Group("/books")
	{
		books.GET("", h.Books.List)
		books.POST("", authed, adminOnly, h.Books.Create)
		books.DELETE("/:id", authed, adminOnly, h.Books.Delete)
		books.PATCH("/:id/toggle-main", authed, adminOnly, h.Books.ToggleFeatured)
	}

	library := api.Group("/library")
	{
		library.POST("", h.Library.Register)
		library.GET("", authed, adminOnly, h.Library.List)
		library.DELETE("/:id", authed, adminOnly, h.Library.Delete)
		library.POST("/send", authed, adminOnly, h.Broadcast.Send)
		library.GET("/export", authed, adminOnly, h.Library.Export)
	}

	courses := api.Group("/courses")
	{
		courses.POST("", h.Courses.Register)
		courses.GET("", authed, adminOnly, h.Courses.List)
		courses.DELETE("/:id", authed, adminOnly, h.Courses.Delete)
		courses.POST("/send", authed, adminOnly, h.Broadcast.Send)
		courses.GET("/export", authed, adminOnly, h.Courses.Export)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", h.Contact.Submit)
		contact.GET("", authed, adminOnly, h.Contact.List)
		contact.DELETE("/:id", authed, adminOnly, h.Contact.Delete)
	}

	newsletter := api.Group("/newsletter")
	{
		newsletter.POST("", h.Newsletter.Subscribe)
		newsletter.GET("", authed, adminOnly, h.Newsletter.List)
		newsletter.DELETE("/:id", authed, adminOnly, h.Newsletter.Delete)
		newsletter.POST("/send", authed, adminOnly, h.Broadcast.Send)
	}

	libraryTimes := api.Group("/library-times")
	{
		libraryTimes.GET("", h.LibraryTimes.List)
		libraryTimes.POST("", authed, adminOnly, h.LibraryTimes.Set)
	}

	api.GET("/prayer-times", h.Prayer.Timings)
	api.GET("/quran/chapters", h.Quran.Chapters)
	api.GET("/quran/chapters/:number", h.Quran.Chapter)
}
