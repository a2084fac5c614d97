package routes

import (
	"net/http"

	"fanhub/artists"
	"fanhub/auth"
	"fanhub/campaigns"
	"fanhub/events"
	"fanhub/filemgr"
	"fanhub/hashtags"
	"fanhub/home"
	"fanhub/middleware"
	"fanhub/news"
	"fanhub/ratelim"
	"fanhub/search"
	"fanhub/teams"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rateLimiter.Limit(auth.RefreshToken))

	router.GET("/api/users", middleware.RequireRole("admin", auth.ListUsers))
	router.POST("/api/users", middleware.RequireRole("admin", auth.CreateUser))
	router.PUT("/api/users/:id/role", middleware.RequireRole("admin", auth.UpdateUserRole))
	router.DELETE("/api/users/:id", middleware.RequireRole("admin", auth.DeleteUser))
}

func AddArtistRoutes(router *httprouter.Router) {
	router.GET("/api/artists", artists.GetArtists)
	router.GET("/api/artists/:slug", artists.GetArtistBySlug)
	router.POST("/api/artists", middleware.Authenticate(artists.CreateArtist))
	router.PUT("/api/artists/:slug", middleware.Authenticate(artists.UpdateArtist))
	router.DELETE("/api/artists/:slug", middleware.Authenticate(artists.DeleteArtist))
}

func AddTeamRoutes(router *httprouter.Router) {
	router.GET("/api/teams", teams.GetTeams)
	router.GET("/api/teams/:slug", teams.GetTeamBySlug)
	router.POST("/api/teams", middleware.Authenticate(teams.CreateTeam))
	router.PUT("/api/teams/:slug", middleware.Authenticate(teams.UpdateTeam))
	router.DELETE("/api/teams/:slug", middleware.Authenticate(teams.DeleteTeam))
}

func AddEventsRoutes(router *httprouter.Router) {
	// Detail routes sit under /event/ so the static segment cannot
	// collide with a slug wildcard.
	router.GET("/api/events", events.GetEvents)
	router.GET("/api/events/event/:slug", events.GetEventBySlug)
	router.POST("/api/events", middleware.Authenticate(events.CreateEvent))
	router.PUT("/api/events/event/:slug", middleware.Authenticate(events.UpdateEvent))
	router.DELETE("/api/events/event/:slug", middleware.Authenticate(events.DeleteEvent))

	router.GET("/api/events/event/:slug/ticket-qr", events.TicketQR)
	router.GET("/api/events/event/:slug/lineup", events.LineupPDF)
}

func AddCampaignRoutes(router *httprouter.Router) {
	router.GET("/api/campaigns", campaigns.GetCampaigns)
	router.GET("/api/campaigns/:slug", campaigns.GetCampaignBySlug)
	router.POST("/api/campaigns", middleware.Authenticate(campaigns.CreateCampaign))
	router.PUT("/api/campaigns/:slug", middleware.Authenticate(campaigns.UpdateCampaign))
	router.DELETE("/api/campaigns/:slug", middleware.Authenticate(campaigns.DeleteCampaign))
}

func AddNewsRoutes(router *httprouter.Router) {
	router.GET("/api/news", middleware.OptionalAuth(news.GetNews))
	router.GET("/api/news/:slug", middleware.OptionalAuth(news.GetNewsBySlug))
	router.POST("/api/news", middleware.Authenticate(news.CreateNews))
	router.PUT("/api/news/:slug", middleware.Authenticate(news.UpdateNews))
	router.DELETE("/api/news/:slug", middleware.Authenticate(news.DeleteNews))
}

func AddHashtagRoutes(router *httprouter.Router, hub *hashtags.Hub) {
	router.GET("/api/hashtags", hashtags.GetHashtags)
	router.GET("/api/hashtags/trending", hashtags.GetTrending)
	router.GET("/api/hashtags/feed", hashtags.FeedHandler(hub))
	router.GET("/api/hashtags/tag/:id", hashtags.GetHashtagByID)
	router.POST("/api/hashtags", middleware.Authenticate(hashtags.CreateHashtag))
	router.PUT("/api/hashtags/tag/:id", middleware.Authenticate(hashtags.UpdateHashtag))
	router.DELETE("/api/hashtags/tag/:id", middleware.Authenticate(hashtags.DeleteHashtag))
}

func AddHomeRoutes(router *httprouter.Router, h *home.Handlers) {
	router.GET("/api/home", h.GetHome)
	router.GET("/api/home/:section", h.GetSection)
}

func AddSearchRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/search", rateLimiter.Limit(search.SearchHandler))
}

func AddUploadRoutes(router *httprouter.Router) {
	router.PUT("/api/picture/:entitytype/:entityid", middleware.Authenticate(filemgr.EditPicture))
}

// RoutesWrapper registers every route group that does not need extra
// collaborators wired in main.
func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddStaticRoutes(router)
	AddAuthRoutes(router, rateLimiter)
	AddArtistRoutes(router)
	AddTeamRoutes(router)
	AddEventsRoutes(router)
	AddCampaignRoutes(router)
	AddNewsRoutes(router)
	AddSearchRoutes(router, rateLimiter)
	AddUploadRoutes(router)
}
