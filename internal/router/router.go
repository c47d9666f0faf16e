// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"teamforge/internal/authz"
	"teamforge/internal/handler"
	"teamforge/internal/middleware"
	"teamforge/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	TeamHandler       *handler.TeamHandler
	MediaHandler      *handler.MediaHandler
	MembershipHandler *handler.MembershipHandler
	SessionHandler    *handler.SessionHandler
	JWTManager        *auth.JWTManager
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Public team routes: published profile pages and branding
		// suggestions for the create-team form do not require a signed-in
		// user.
		v1.GET("/teams/by-slug/:slug", cfg.TeamHandler.GetTeamBySlug)
		v1.GET("/teams/suggestions", cfg.TeamHandler.SuggestBranding)

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(middleware.Auth(cfg.JWTManager))
		{
			// Team CRUD
			teams.POST("", cfg.TeamHandler.CreateTeam)
			teams.GET("", cfg.TeamHandler.ListTeams)

			// Team routes requiring team membership
			teamWithID := teams.Group("/:teamId")
			{
				teamWithID.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.TeamHandler.GetTeam)
				teamWithID.PUT("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamUpdate), cfg.TeamHandler.UpdateTeam)
				teamWithID.DELETE("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamDelete), cfg.TeamHandler.DeleteTeam)
				teamWithID.GET("/completion", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.TeamHandler.GetCompletion)

				// Editing session: open, buffered edits, state, autosave
				// toggle, guarded close
				session := teamWithID.Group("/session")
				session.Use(middleware.TeamAuthz(cfg.Authorizer, authz.ActionSessionEdit))
				{
					session.POST("", cfg.SessionHandler.Open)
					session.GET("", cfg.SessionHandler.State)
					session.PATCH("", cfg.SessionHandler.Edit)
					session.PUT("/autosave", cfg.SessionHandler.SetAutosave)
					session.DELETE("", cfg.SessionHandler.Close)
				}

				// Roster
				members := teamWithID.Group("/members")
				{
					members.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionTeamView), cfg.MembershipHandler.ListMembers)
					members.POST("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberInvite), cfg.MembershipHandler.InviteMember)
					members.PUT("/:memberId", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberUpdateRole), cfg.MembershipHandler.UpdateMember)
					members.DELETE("/:memberId", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMemberRemove), cfg.MembershipHandler.RemoveMember)
				}

				// Media board
				media := teamWithID.Group("/media")
				{
					media.GET("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaView), cfg.MediaHandler.ListItems)
					media.GET("/:id", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaView), cfg.MediaHandler.GetItem)
					media.POST("", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaCreate), cfg.MediaHandler.CreateItem)
					media.POST("/images", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaCreate), cfg.MediaHandler.UploadImage)
					media.PUT("/:id", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaUpdate), cfg.MediaHandler.UpdateItem)
					media.DELETE("/:id", middleware.TeamAuthz(cfg.Authorizer, authz.ActionMediaDelete), cfg.MediaHandler.DeleteItem)
				}
			}
		}

		// Invite acceptance (protected, not team-scoped: the caller is not a
		// member until the invite is claimed)
		invitations := v1.Group("/invitations")
		invitations.Use(middleware.Auth(cfg.JWTManager))
		{
			invitations.POST("/accept", cfg.MembershipHandler.AcceptInvite)
		}
	}

	return r
}
