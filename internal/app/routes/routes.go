package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/eventra/internal/app/controllers"
	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	eventManagerController *controllers.EventManagerController,
	volunteerController *controllers.VolunteerController,
	sponsorController *controllers.SponsorController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/me", userController.GetCurrentUser)
			users.GET("/:id", userController.GetUser)
			users.PATCH("/:id", userController.UpdateUser)
			users.PATCH("/:id/status", userController.UpdateUserStatus)
		}

		eventManagers := authenticated.Group("/event-managers")
		{
			eventManagers.GET("/:userId", eventManagerController.GetProfile)

			ownProfile := eventManagers.Group("")
			ownProfile.Use(authMiddleware.RoleRequired(models.RoleEventManager))
			{
				ownProfile.POST("", eventManagerController.CreateProfile)
				ownProfile.PATCH("", eventManagerController.UpdateProfile)
				ownProfile.DELETE("", eventManagerController.DeleteProfile)
				ownProfile.POST("/profile-picture", eventManagerController.UploadProfilePicture)
			}
		}

		volunteers := authenticated.Group("/volunteers")
		{
			volunteers.GET("/:userId", volunteerController.GetProfile)

			ownProfile := volunteers.Group("")
			ownProfile.Use(authMiddleware.RoleRequired(models.RoleVolunteer))
			{
				ownProfile.POST("", volunteerController.CreateProfile)
				ownProfile.PATCH("", volunteerController.UpdateProfile)
				ownProfile.DELETE("", volunteerController.DeleteProfile)
			}
		}

		sponsors := authenticated.Group("/sponsors")
		{
			sponsors.GET("/:userId", sponsorController.GetProfile)

			ownProfile := sponsors.Group("")
			ownProfile.Use(authMiddleware.RoleRequired(models.RoleSponsor))
			{
				ownProfile.POST("", sponsorController.CreateProfile)
				ownProfile.PATCH("", sponsorController.UpdateProfile)
				ownProfile.DELETE("", sponsorController.DeleteProfile)
			}
		}

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.GET("/:id", eventController.GetEvent)

			managerOnly := events.Group("")
			managerOnly.Use(authMiddleware.RoleRequired(models.RoleEventManager))
			{
				managerOnly.POST("", eventController.CreateEvent)
				managerOnly.GET("/mine", eventController.ListMyEvents)
				managerOnly.PATCH("/:id", eventController.UpdateEvent)
				managerOnly.DELETE("/:id", eventController.DeleteEvent)
				managerOnly.POST("/:id/volunteers", eventController.AssignVolunteer)
				managerOnly.DELETE("/:id/volunteers/:volunteerId", eventController.RemoveVolunteer)
			}
		}
	}
}
