package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orbitwatch/debris-tracker/internal/analytics"
	"github.com/orbitwatch/debris-tracker/internal/api/rest/dto"
	"github.com/orbitwatch/debris-tracker/internal/batch"
	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/ledger"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/search"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// Users
	CreateUser(c *gin.Context)
	ListUsers(c *gin.Context)
	GetUser(c *gin.Context)
	GetUserByWallet(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
	AddUserPoints(c *gin.Context)
	ListUserObservations(c *gin.Context)

	// Debris catalog
	CreateDebris(c *gin.Context)
	ListDebris(c *gin.Context)
	GetDebris(c *gin.Context)
	GetDebrisByCatalogID(c *gin.Context)
	UpdateDebris(c *gin.Context)
	DeleteDebris(c *gin.Context)
	ListHighRiskDebris(c *gin.Context)
	ListDebrisObservations(c *gin.Context)

	// Observation lifecycle
	SubmitObservation(c *gin.Context)
	GetObservation(c *gin.Context)
	ListPendingObservations(c *gin.Context)
	ListApprovedObservations(c *gin.Context)
	ApproveObservation(c *gin.Context)
	RejectObservation(c *gin.Context)
	RecordModeration(c *gin.Context)
	GetObservationModeration(c *gin.Context)
	AmendModeration(c *gin.Context)

	// Blockchain ledger
	RecordBlockchainLog(c *gin.Context)
	GetBlockchainLog(c *gin.Context)
	GetBlockchainLogByTxHash(c *gin.Context)
	ListBlockchainLogsByDebris(c *gin.Context)
	ListBlockchainLogsByBlock(c *gin.Context)
	GetLedgerStats(c *gin.Context)

	// Batch operations
	BatchImportDebris(c *gin.Context)
	BatchImportUsers(c *gin.Context)
	BatchApprove(c *gin.Context)
	BatchReject(c *gin.Context)
	BatchCleanup(c *gin.Context)
	BatchSyncChain(c *gin.Context)
	GetBatchJob(c *gin.Context)
	ListBatchJobs(c *gin.Context)

	// Analytics
	GetDashboard(c *gin.Context)
	GetDebrisAnalytics(c *gin.Context)
	GetObservationAnalytics(c *gin.Context)
	GetLeaderboard(c *gin.Context)
	GetModerationAnalytics(c *gin.Context)
	GetBlockchainAnalytics(c *gin.Context)
	GetRiskAnalysis(c *gin.Context)
	GetGeospatialAnalytics(c *gin.Context)

	// Search
	SearchDebris(c *gin.Context)
	SearchObservations(c *gin.Context)
	SearchUsers(c *gin.Context)
	SearchSuggestions(c *gin.Context)

	// HealthCheck returns the health status of the API
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	identity  *identity.Service
	catalog   *catalog.Service
	lifecycle *lifecycle.Manager
	ledger    *ledger.Mirror
	batch     *batch.Engine
	analytics *analytics.Engine
	search    *search.Service
}

// NewHandler creates a new REST API handler
func NewHandler(
	identitySvc *identity.Service,
	catalogSvc *catalog.Service,
	lifecycleMgr *lifecycle.Manager,
	ledgerMirror *ledger.Mirror,
	batchEngine *batch.Engine,
	analyticsEngine *analytics.Engine,
	searchSvc *search.Service,
) Handler {
	return &handler{
		identity:  identitySvc,
		catalog:   catalogSvc,
		lifecycle: lifecycleMgr,
		ledger:    ledgerMirror,
		batch:     batchEngine,
		analytics: analyticsEngine,
		search:    searchSvc,
	}
}

// --- Users ---

// CreateUser registers a new account
// POST /api/v1/users
func (h *handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := h.identity.Create(c.Request.Context(), identity.CreateInput{
		WalletAddress: req.WalletAddress,
		Email:         req.Email,
		Password:      req.Password,
		Role:          domain.Role(req.Role),
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// ListUsers retrieves all accounts
// GET /api/v1/users
func (h *handler) ListUsers(c *gin.Context) {
	users, err := h.identity.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUsers(users))
}

// GetUser retrieves an account by id
// GET /api/v1/users/:id
func (h *handler) GetUser(c *gin.Context) {
	user, err := h.identity.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// GetUserByWallet retrieves an account by wallet address
// GET /api/v1/users/wallet/:wallet
func (h *handler) GetUserByWallet(c *gin.Context) {
	user, err := h.identity.ByWallet(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// UpdateUser changes profile fields in place
// PUT /api/v1/users/:id
func (h *handler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var role *domain.Role
	if req.Role != nil {
		r := domain.Role(*req.Role)
		role = &r
	}

	user, err := h.identity.Update(c.Request.Context(), c.Param("id"), identity.UpdateInput{
		Email:     req.Email,
		Password:  req.Password,
		Role:      role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// DeleteUser removes an account
// DELETE /api/v1/users/:id
func (h *handler) DeleteUser(c *gin.Context) {
	if err := h.identity.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddUserPoints awards points; the only way points change
// POST /api/v1/users/:id/points
func (h *handler) AddUserPoints(c *gin.Context) {
	var req dto.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := h.identity.AddPoints(c.Request.Context(), c.Param("id"), req.Points)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// ListUserObservations retrieves a user's observations
// GET /api/v1/users/:id/observations
func (h *handler) ListUserObservations(c *gin.Context) {
	items, err := h.lifecycle.ByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservations(items))
}

// --- Debris catalog ---

// CreateDebris catalogs a new object
// POST /api/v1/debris
func (h *handler) CreateDebris(c *gin.Context) {
	var req dto.CreateDebrisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	d, err := h.catalog.Create(c.Request.Context(), debrisCreateInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromDebris(d))
}

// ListDebris retrieves the whole catalog
// GET /api/v1/debris
func (h *handler) ListDebris(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDebrisList(items))
}

// GetDebris retrieves a cataloged object by id
// GET /api/v1/debris/:id
func (h *handler) GetDebris(c *gin.Context) {
	d, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDebris(d))
}

// GetDebrisByCatalogID retrieves a cataloged object by external designation
// GET /api/v1/debris/catalog/:catalog_id
func (h *handler) GetDebrisByCatalogID(c *gin.Context) {
	d, err := h.catalog.ByCatalogID(c.Request.Context(), c.Param("catalog_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDebris(d))
}

// UpdateDebris changes catalog fields in place
// PUT /api/v1/debris/:id
func (h *handler) UpdateDebris(c *gin.Context) {
	var req dto.UpdateDebrisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	d, err := h.catalog.Update(c.Request.Context(), c.Param("id"), catalog.UpdateInput{
		CatalogID: req.CatalogID,
		Source:    req.Source,
		Epoch:     req.Epoch,
		TLELine1:  req.TLELine1,
		TLELine2:  req.TLELine2,
		Lat:       req.Lat,
		Lon:       req.Lon,
		Alt:       req.Alt,
		RiskScore: req.RiskScore,
		OnChainTx: req.OnChainTx,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDebris(d))
}

// DeleteDebris removes a cataloged object
// DELETE /api/v1/debris/:id
func (h *handler) DeleteDebris(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListHighRiskDebris retrieves objects at or above the risk threshold
// GET /api/v1/debris/high-risk?min_risk=<score>&limit=<n>
func (h *handler) ListHighRiskDebris(c *gin.Context) {
	minRisk := parseFloatQuery(c, "min_risk", 8)
	limit := parseIntQuery(c, "limit", 0)

	items, err := h.catalog.ByMinRisk(c.Request.Context(), minRisk, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDebrisList(items))
}

// ListDebrisObservations retrieves the sightings of a cataloged object
// GET /api/v1/debris/:id/observations
func (h *handler) ListDebrisObservations(c *gin.Context) {
	items, err := h.lifecycle.ByDebris(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservations(items))
}

// --- Observation lifecycle ---

// SubmitObservation files a new sighting; it starts pending
// POST /api/v1/observations
func (h *handler) SubmitObservation(c *gin.Context) {
	var req dto.SubmitObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	o, err := h.lifecycle.Submit(c.Request.Context(), lifecycle.SubmitInput{
		UserID:      req.UserID,
		DebrisID:    req.DebrisID,
		ImageURL:    req.ImageURL,
		Note:        req.Note,
		LocationLat: req.LocationLat,
		LocationLon: req.LocationLon,
		LocationAlt: req.LocationAlt,
		TxHash:      req.TxHash,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromObservation(o))
}

// GetObservation retrieves a sighting by id
// GET /api/v1/observations/:id
func (h *handler) GetObservation(c *gin.Context) {
	o, err := h.lifecycle.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservation(o))
}

// ListPendingObservations retrieves the moderation queue
// GET /api/v1/observations/pending
func (h *handler) ListPendingObservations(c *gin.Context) {
	items, err := h.lifecycle.Pending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservations(items))
}

// ListApprovedObservations retrieves the approved partition
// GET /api/v1/observations/approved
func (h *handler) ListApprovedObservations(c *gin.Context) {
	items, err := h.lifecycle.Approved(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservations(items))
}

// ApproveObservation flips the status without recording a decision row
// POST /api/v1/observations/:id/approve
func (h *handler) ApproveObservation(c *gin.Context) {
	o, err := h.lifecycle.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservation(o))
}

// RejectObservation flips the status without recording a decision row
// POST /api/v1/observations/:id/reject
func (h *handler) RejectObservation(c *gin.Context) {
	o, err := h.lifecycle.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromObservation(o))
}

// RecordModeration records the one decision an observation gets; a second
// decision is a conflict
// POST /api/v1/observations/:id/moderation
func (h *handler) RecordModeration(c *gin.Context) {
	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	m, err := h.lifecycle.RecordModeration(c.Request.Context(), c.Param("id"), req.ModeratorID, *req.Approved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModeration(m))
}

// GetObservationModeration retrieves the decision for an observation
// GET /api/v1/observations/:id/moderation
func (h *handler) GetObservationModeration(c *gin.Context) {
	m, err := h.lifecycle.ModerationFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModeration(m))
}

// AmendModeration flips an existing decision in place
// PUT /api/v1/moderations/:id
func (h *handler) AmendModeration(c *gin.Context) {
	var req dto.AmendModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	m, err := h.lifecycle.AmendModeration(c.Request.Context(), c.Param("id"), *req.Approved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModeration(m))
}

// --- Blockchain ledger ---

// RecordBlockchainLog mirrors a confirmed transaction
// POST /api/v1/blockchain/logs
func (h *handler) RecordBlockchainLog(c *gin.Context) {
	var req dto.RecordLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	l, err := h.ledger.Record(c.Request.Context(), ledger.RecordInput{
		DebrisID:    req.DebrisID,
		TxHash:      req.TxHash,
		BlockNumber: req.BlockNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromBlockchainLog(l))
}

// GetBlockchainLog retrieves a confirmation by id
// GET /api/v1/blockchain/logs/:id
func (h *handler) GetBlockchainLog(c *gin.Context) {
	l, err := h.ledger.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBlockchainLog(l))
}

// GetBlockchainLogByTxHash retrieves a confirmation by transaction hash
// GET /api/v1/blockchain/logs/tx/:tx_hash
func (h *handler) GetBlockchainLogByTxHash(c *gin.Context) {
	l, err := h.ledger.ByTxHash(c.Request.Context(), c.Param("tx_hash"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBlockchainLog(l))
}

// ListBlockchainLogsByDebris retrieves an object's confirmations, newest first
// GET /api/v1/debris/:id/blockchain-logs
func (h *handler) ListBlockchainLogsByDebris(c *gin.Context) {
	items, err := h.ledger.ByDebris(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBlockchainLogs(items))
}

// ListBlockchainLogsByBlock retrieves confirmations at a block number
// GET /api/v1/blockchain/blocks/:number/logs
func (h *handler) ListBlockchainLogsByBlock(c *gin.Context) {
	blockNumber, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid block number")
		return
	}

	items, err := h.ledger.ByBlock(c.Request.Context(), blockNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBlockchainLogs(items))
}

// GetLedgerStats summarizes the mirrored ledger
// GET /api/v1/blockchain/stats
func (h *handler) GetLedgerStats(c *gin.Context) {
	stats, err := h.ledger.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Batch operations ---

// BatchImportDebris bulk-loads catalog entries; partial failure is normal
// POST /api/v1/batch/debris/import
func (h *handler) BatchImportDebris(c *gin.Context) {
	var req dto.ImportDebrisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	items := make([]catalog.CreateInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, debrisCreateInput(item))
	}

	result, err := h.batch.ImportDebris(c.Request.Context(), items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchImportUsers bulk-loads accounts; partial failure is normal
// POST /api/v1/batch/users/import
func (h *handler) BatchImportUsers(c *gin.Context) {
	var req dto.ImportUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	items := make([]identity.CreateInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, identity.CreateInput{
			WalletAddress: item.WalletAddress,
			Email:         item.Email,
			Password:      item.Password,
			Role:          domain.Role(item.Role),
			AvatarURL:     item.AvatarURL,
		})
	}

	result, err := h.batch.ImportUsers(c.Request.Context(), items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchApprove approves observations in bulk
// POST /api/v1/batch/observations/approve
func (h *handler) BatchApprove(c *gin.Context) {
	var req dto.BatchDecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.batch.Approve(c.Request.Context(), req.ObservationIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchReject rejects observations in bulk
// POST /api/v1/batch/observations/reject
func (h *handler) BatchReject(c *gin.Context) {
	var req dto.BatchDecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.batch.Reject(c.Request.Context(), req.ObservationIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchCleanup deletes observations older than the threshold
// POST /api/v1/batch/cleanup
func (h *handler) BatchCleanup(c *gin.Context) {
	var req dto.CleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.batch.CleanupOldData(c.Request.Context(), req.ThresholdDays)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BatchSyncChain triggers an on-chain backfill over a block range
// POST /api/v1/batch/sync
func (h *handler) BatchSyncChain(c *gin.Context) {
	var req dto.SyncChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.batch.SyncChain(c.Request.Context(), req.FromBlock, req.ToBlock)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBatchJob retrieves a finished batch run
// GET /api/v1/batch/jobs/:id
func (h *handler) GetBatchJob(c *gin.Context) {
	job, err := h.batch.JobStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListBatchJobs retrieves recent batch runs, newest first
// GET /api/v1/batch/jobs?limit=<n>
func (h *handler) ListBatchJobs(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 0)

	jobs, err := h.batch.JobHistory(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// --- Analytics ---

// GetDashboard returns the headline counters
// GET /api/v1/analytics/dashboard
func (h *handler) GetDashboard(c *gin.Context) {
	stats, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDebrisAnalytics aggregates the catalog
// GET /api/v1/analytics/debris?timeframe=<token>&source=<label>
func (h *handler) GetDebrisAnalytics(c *gin.Context) {
	stats, err := h.analytics.DebrisStats(c.Request.Context(), c.Query("timeframe"), c.Query("source"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetObservationAnalytics aggregates the status partitions
// GET /api/v1/analytics/observations?timeframe=<token>
func (h *handler) GetObservationAnalytics(c *gin.Context) {
	stats, err := h.analytics.ObservationStats(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetLeaderboard returns the top users by points
// GET /api/v1/analytics/leaderboard?limit=<n>&timeframe=<token>
func (h *handler) GetLeaderboard(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 0)

	entries, err := h.analytics.Leaderboard(c.Request.Context(), limit, c.Query("timeframe"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetModerationAnalytics aggregates recorded decisions
// GET /api/v1/analytics/moderation?moderator_id=<id>&timeframe=<token>
func (h *handler) GetModerationAnalytics(c *gin.Context) {
	stats, err := h.analytics.ModerationStats(c.Request.Context(), c.Query("moderator_id"), c.Query("timeframe"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetBlockchainAnalytics aggregates the mirrored ledger
// GET /api/v1/analytics/blockchain?timeframe=<token>
func (h *handler) GetBlockchainAnalytics(c *gin.Context) {
	stats, err := h.analytics.BlockchainStats(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRiskAnalysis returns the risk rollup and policy recommendation
// GET /api/v1/analytics/risk
func (h *handler) GetRiskAnalysis(c *gin.Context) {
	analysis, err := h.analytics.RiskAnalysis(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetGeospatialAnalytics counts debris inside an optional rectangular bound
// GET /api/v1/analytics/geospatial?bounds=lat1,lng1,lat2,lng2
func (h *handler) GetGeospatialAnalytics(c *gin.Context) {
	stats, err := h.analytics.GeospatialStats(c.Request.Context(), c.Query("bounds"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Search ---

// SearchDebris searches the catalog with explicit filters
// GET /api/v1/search/debris?q=<query>&page=<n>&limit=<n>&source=&min_risk=&max_risk=&min_alt=&max_alt=
func (h *handler) SearchDebris(c *gin.Context) {
	filters := search.DebrisFilters{
		Source:      optionalStringQuery(c, "source"),
		MinRisk:     optionalFloatQuery(c, "min_risk"),
		MaxRisk:     optionalFloatQuery(c, "max_risk"),
		MinAltitude: optionalFloatQuery(c, "min_alt"),
		MaxAltitude: optionalFloatQuery(c, "max_alt"),
	}

	results, err := h.search.Debris(c.Request.Context(), c.Query("q"),
		parseIntQuery(c, "page", 1), parseIntQuery(c, "limit", 0), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchObservations searches observation notes with explicit filters
// GET /api/v1/search/observations?q=<query>&page=<n>&limit=<n>&status=&user_id=&debris_id=
func (h *handler) SearchObservations(c *gin.Context) {
	filters := search.ObservationFilters{
		UserID:   optionalStringQuery(c, "user_id"),
		DebrisID: optionalStringQuery(c, "debris_id"),
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ApprovalStatus(raw)
		if !status.Valid() {
			respondValidationError(c, "invalid status filter")
			return
		}
		filters.Status = &status
	}

	results, err := h.search.Observations(c.Request.Context(), c.Query("q"),
		parseIntQuery(c, "page", 1), parseIntQuery(c, "limit", 0), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchUsers searches accounts by email or wallet substring
// GET /api/v1/search/users?q=<query>&page=<n>&limit=<n>
func (h *handler) SearchUsers(c *gin.Context) {
	results, err := h.search.Users(c.Request.Context(), c.Query("q"),
		parseIntQuery(c, "page", 1), parseIntQuery(c, "limit", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchSuggestions returns completion strings for the query
// GET /api/v1/search/suggestions?q=<query>&type=<debris|observations|users>
func (h *handler) SearchSuggestions(c *gin.Context) {
	suggestions, err := h.search.Suggestions(c.Request.Context(), c.Query("q"),
		search.SuggestionKind(c.Query("type")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// HealthCheck returns the health status of the API
// GET /health
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "debris-tracker-api",
	})
}

// debrisCreateInput maps the request shape to the catalog input
func debrisCreateInput(req dto.CreateDebrisRequest) catalog.CreateInput {
	return catalog.CreateInput{
		CatalogID: req.CatalogID,
		Source:    req.Source,
		Epoch:     req.Epoch,
		TLELine1:  req.TLELine1,
		TLELine2:  req.TLELine2,
		Lat:       req.Lat,
		Lon:       req.Lon,
		Alt:       req.Alt,
		RiskScore: req.RiskScore,
		OnChainTx: req.OnChainTx,
	}
}
