package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"vdpcza/internal/api/controllers"
	"vdpcza/internal/models/db_models"
	"vdpcza/pkg/middleware"
)

// Controllers gathers every handler the router mounts.
type Controllers struct {
	fx.In

	Auth       *controllers.AuthController
	Gate       *controllers.GateController
	Health     *controllers.HealthController
	Dashboard  *controllers.DashboardController
	Realtime   *controllers.RealtimeController
	Trip       *controllers.TripController
	Memory     *controllers.MemoryController
	Capsule    *controllers.CapsuleController
	Gift       *controllers.GiftController
	Mood       *controllers.MoodController
	Restaurant *controllers.RestaurantController
	BucketList *controllers.BucketListController
	Quote      *controllers.QuoteController
	Trivia     *controllers.TriviaController
	Profile    *controllers.ProfileController
	Chat       *controllers.ChatController
}

func RegisterRoutes(r *gin.Engine, auth middleware.SessionAuthenticator, ctl Controllers) {
	r.GET("/healthz", ctl.Health.Healthz)

	authGroup := r.Group("/auth")
	authGroup.POST("/otp", ctl.Auth.RequestOtp)
	authGroup.POST("/verify", ctl.Auth.VerifyOtp)
	authGroup.POST("/password", ctl.Auth.SignInWithPassword)

	r.POST("/gate/unlock", ctl.Gate.Unlock)

	s := r.Group("/", middleware.RequireSession(auth))
	s.GET("/auth/me", ctl.Auth.Me)
	s.POST("/auth/logout", ctl.Auth.Logout)

	s.GET("/nav", ctl.Dashboard.GetNav)
	s.GET("/dashboard", ctl.Dashboard.GetDashboard)
	s.GET("/dashboard/counter", ctl.Dashboard.GetCounter)
	s.GET("/playlist", ctl.Dashboard.GetPlaylist)
	s.GET("/realtime/:channel", ctl.Realtime.Stream)

	s.GET("/trips", ctl.Trip.ListTrips)
	s.GET("/trips/markers", ctl.Trip.ListMarkers)

	s.GET("/albums", ctl.Memory.ListAlbums)
	s.POST("/albums", ctl.Memory.CreateAlbum)
	s.GET("/memories", ctl.Memory.ListMemories)
	s.POST("/memories/upload", ctl.Memory.UploadMemory)

	s.GET("/capsules", ctl.Capsule.ListCapsules)
	s.GET("/capsules/:id", ctl.Capsule.GetCapsule)

	s.GET("/gifts", ctl.Gift.ListGifts)
	s.GET("/gifts/unread", ctl.Gift.UnreadGifts)
	s.POST("/gifts/:id/open", ctl.Gift.OpenGift)

	s.GET("/moods", ctl.Mood.ListMoods)
	s.POST("/moods", ctl.Mood.SetMood)

	s.GET("/restaurants", ctl.Restaurant.ListRestaurants)
	s.POST("/restaurants", ctl.Restaurant.CreateRestaurant)
	s.PUT("/restaurants/:id", ctl.Restaurant.UpdateRestaurant)
	s.DELETE("/restaurants/:id", ctl.Restaurant.DeleteRestaurant)
	s.GET("/restaurants/:id/reviews", ctl.Restaurant.ListReviews)
	s.POST("/restaurants/:id/reviews", ctl.Restaurant.AddReview)
	s.DELETE("/reviews/:reviewId", ctl.Restaurant.DeleteReview)

	s.GET("/bucket-list", ctl.BucketList.List)
	s.POST("/bucket-list", ctl.BucketList.Add)
	s.POST("/bucket-list/:id/toggle", ctl.BucketList.Toggle)
	s.DELETE("/bucket-list/:id", ctl.BucketList.Delete)

	s.GET("/quotes/random", ctl.Quote.RandomQuote)
	s.GET("/trivia/today", ctl.Trivia.Today)
	s.POST("/trivia/answer", ctl.Trivia.Answer)

	s.GET("/profile/me", ctl.Profile.GetMe)
	s.PUT("/profile/me", ctl.Profile.UpdateMe)
	s.POST("/profile/me/avatar", ctl.Profile.UploadAvatar)

	s.GET("/chat", ctl.Chat.Greeting)
	s.POST("/chat", ctl.Chat.Send)

	admin := s.Group("/admin", middleware.RequireRole(db_models.RoleAdmin))
	admin.POST("/trips", ctl.Trip.CreateTrip)
	admin.PUT("/trips/:id", ctl.Trip.UpdateTrip)
	admin.POST("/trips/:id/reveal", ctl.Trip.ToggleReveal)
	admin.DELETE("/trips/:id", ctl.Trip.DeleteTrip)

	admin.POST("/gifts", ctl.Gift.CreateGift)
	admin.PUT("/gifts/:id", ctl.Gift.UpdateGift)
	admin.POST("/gifts/:id/lock", ctl.Gift.ToggleLock)
	admin.DELETE("/gifts/:id", ctl.Gift.DeleteGift)

	admin.POST("/capsules", ctl.Capsule.CreateCapsule)
	admin.DELETE("/capsules/:id", ctl.Capsule.DeleteCapsule)

	admin.GET("/quotes", ctl.Quote.ListQuotes)
	admin.POST("/quotes", ctl.Quote.CreateQuote)
	admin.DELETE("/quotes/:id", ctl.Quote.DeleteQuote)

	admin.GET("/trivia", ctl.Trivia.ListQuestions)
	admin.POST("/trivia", ctl.Trivia.CreateQuestion)
	admin.DELETE("/trivia/:id", ctl.Trivia.DeleteQuestion)
}
