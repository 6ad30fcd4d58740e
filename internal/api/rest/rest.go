package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/orbitwatch/debris-tracker/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// User endpoints (public read access, writes require authentication)
		v1.GET("/users", handler.ListUsers)
		v1.GET("/users/:id", handler.GetUser)
		v1.GET("/users/wallet/:wallet", handler.GetUserByWallet)
		v1.GET("/users/:id/observations", handler.ListUserObservations)
		v1.POST("/users", middleware.Auth(authCfg), handler.CreateUser)
		v1.PUT("/users/:id", middleware.Auth(authCfg), handler.UpdateUser)
		v1.DELETE("/users/:id", middleware.Auth(authCfg), handler.DeleteUser)
		v1.POST("/users/:id/points", middleware.Auth(authCfg), handler.AddUserPoints)

		// Debris catalog endpoints
		v1.GET("/debris", handler.ListDebris)
		v1.GET("/debris/high-risk", handler.ListHighRiskDebris)
		v1.GET("/debris/:id", handler.GetDebris)
		v1.GET("/debris/catalog/:catalog_id", handler.GetDebrisByCatalogID)
		v1.GET("/debris/:id/observations", handler.ListDebrisObservations)
		v1.GET("/debris/:id/blockchain-logs", handler.ListBlockchainLogsByDebris)
		v1.POST("/debris", middleware.Auth(authCfg), handler.CreateDebris)
		v1.PUT("/debris/:id", middleware.Auth(authCfg), handler.UpdateDebris)
		v1.DELETE("/debris/:id", middleware.Auth(authCfg), handler.DeleteDebris)

		// Observation lifecycle endpoints
		v1.GET("/observations/pending", handler.ListPendingObservations)
		v1.GET("/observations/approved", handler.ListApprovedObservations)
		v1.GET("/observations/:id", handler.GetObservation)
		v1.GET("/observations/:id/moderation", handler.GetObservationModeration)
		v1.POST("/observations", middleware.Auth(authCfg), handler.SubmitObservation)
		v1.POST("/observations/:id/approve", middleware.Auth(authCfg), handler.ApproveObservation)
		v1.POST("/observations/:id/reject", middleware.Auth(authCfg), handler.RejectObservation)
		v1.POST("/observations/:id/moderation", middleware.Auth(authCfg), handler.RecordModeration)
		v1.PUT("/moderations/:id", middleware.Auth(authCfg), handler.AmendModeration)

		// Blockchain ledger endpoints
		v1.GET("/blockchain/logs/tx/:tx_hash", handler.GetBlockchainLogByTxHash)
		v1.GET("/blockchain/logs/:id", handler.GetBlockchainLog)
		v1.GET("/blockchain/blocks/:number/logs", handler.ListBlockchainLogsByBlock)
		v1.GET("/blockchain/stats", handler.GetLedgerStats)
		v1.POST("/blockchain/logs", middleware.Auth(authCfg), handler.RecordBlockchainLog)

		// Batch endpoints (requires API key authentication only)
		v1.POST("/batch/debris/import", middleware.APIKeyAuth(authCfg), handler.BatchImportDebris)
		v1.POST("/batch/users/import", middleware.APIKeyAuth(authCfg), handler.BatchImportUsers)
		v1.POST("/batch/observations/approve", middleware.APIKeyAuth(authCfg), handler.BatchApprove)
		v1.POST("/batch/observations/reject", middleware.APIKeyAuth(authCfg), handler.BatchReject)
		v1.POST("/batch/cleanup", middleware.APIKeyAuth(authCfg), handler.BatchCleanup)
		v1.POST("/batch/sync", middleware.APIKeyAuth(authCfg), handler.BatchSyncChain)
		v1.GET("/batch/jobs", middleware.APIKeyAuth(authCfg), handler.ListBatchJobs)
		v1.GET("/batch/jobs/:id", middleware.APIKeyAuth(authCfg), handler.GetBatchJob)

		// Analytics endpoints (public read access)
		v1.GET("/analytics/dashboard", handler.GetDashboard)
		v1.GET("/analytics/debris", handler.GetDebrisAnalytics)
		v1.GET("/analytics/observations", handler.GetObservationAnalytics)
		v1.GET("/analytics/leaderboard", handler.GetLeaderboard)
		v1.GET("/analytics/moderation", handler.GetModerationAnalytics)
		v1.GET("/analytics/blockchain", handler.GetBlockchainAnalytics)
		v1.GET("/analytics/risk", handler.GetRiskAnalysis)
		v1.GET("/analytics/geospatial", handler.GetGeospatialAnalytics)

		// Search endpoints (public read access)
		v1.GET("/search/debris", handler.SearchDebris)
		v1.GET("/search/observations", handler.SearchObservations)
		v1.GET("/search/users", handler.SearchUsers)
		v1.GET("/search/suggestions", handler.SearchSuggestions)
	}
}
