package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"construction-marketplace/internal/auth"
	model "construction-marketplace/internal/models"
	"construction-marketplace/services/market/helpers"
	"construction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	CreateProject(name, description string, price uint64, caller string) (model.Project, error)
	PlaceBid(projectID, amount, escrow uint64, caller string) (model.Bid, error)
	AcceptBid(bidID uint64, caller string) (model.Project, error)
	MarkMilestone(projectID uint64, index int, caller string) (model.Project, error)
	CompleteProject(projectID uint64, caller string) error
	Withdraw(caller string) (uint64, error)
	ToggleActive(caller string) (bool, error)
	GetProject(id uint64) (model.Project, error)
	GetBid(id uint64) (model.Bid, error)
	ListProjects() []model.Project
	BidsForProject(projectID uint64) ([]model.Bid, error)
	Treasury() uint64
	Stopped() bool
	SystemOwner() string
	Events() []model.Event
	EventsForProject(projectID uint64) []model.Event
	EventsForBid(bidID uint64) []model.Event
}

type MarketHandler struct {
	service MarketServiceInterface
	tokens  *auth.TokenManager
}

func NewMarketHandler(service MarketServiceInterface, tokens *auth.TokenManager) *MarketHandler {
	return &MarketHandler{service: service, tokens: tokens}
}

// IssueTokenHandler handles POST /auth/token
func (h *MarketHandler) IssueTokenHandler(c *gin.Context) {
	var req helpers.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "IssueTokenHandler", err)
		return
	}

	token, err := h.tokens.Issue(req.Account)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "failed to issue token")
		utils.Error("IssueTokenHandler: failed to issue token", map[string]any{
			"account": req.Account,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.TokenResponse{Account: req.Account, Token: token}, "token issued")
}

// CreateProjectHandler handles POST /projects
func (h *MarketHandler) CreateProjectHandler(c *gin.Context) {
	var req helpers.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProjectHandler", err)
		return
	}
	caller := helpers.CallerAccount(c)

	project, err := h.service.CreateProject(req.Name, req.Description, req.Price, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProjectHandler: failed to create project", map[string]any{
			"owner": caller,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToProjectResponse(project), "project created successfully")
	helpers.LogSuccess("CreateProjectHandler", "project created successfully", map[string]any{
		"project_id": project.ProjectID,
		"name":       project.Name,
		"owner":      project.Owner,
	})
}

// ListProjectsHandler handles GET /projects
func (h *MarketHandler) ListProjectsHandler(c *gin.Context) {
	projects := h.service.ListProjects()

	resp := make([]helpers.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, helpers.ToProjectResponse(p))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "projects retrieved successfully")
}

// GetProjectHandler handles GET /projects/:project_id
func (h *MarketHandler) GetProjectHandler(c *gin.Context) {
	projectID, err := helpers.ParseIDParam(c, "project_id")
	if err != nil {
		helpers.HandleBindError(c, "GetProjectHandler", err)
		return
	}

	project, err := h.service.GetProject(projectID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProjectHandler: error retrieving project", map[string]any{"project_id": projectID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProjectResponse(project), "project retrieved successfully")
}

// GetProjectBidsHandler handles GET /projects/:project_id/bids
func (h *MarketHandler) GetProjectBidsHandler(c *gin.Context) {
	projectID, err := helpers.ParseIDParam(c, "project_id")
	if err != nil {
		helpers.HandleBindError(c, "GetProjectBidsHandler", err)
		return
	}

	bids, err := h.service.BidsForProject(projectID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProjectBidsHandler: error retrieving bids", map[string]any{"project_id": projectID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.ToBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetProjectBidsHandler", "bids retrieved successfully", map[string]any{
		"project_id": projectID,
		"count":      len(resp),
	})
}

// PlaceBidHandler handles POST /bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	caller := helpers.CallerAccount(c)

	bid, err := h.service.PlaceBid(*req.ProjectID, req.Amount, req.Escrow, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"project_id": *req.ProjectID,
			"bidder":     caller,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"project_id": bid.ProjectID,
		"bidder":     bid.Bidder,
		"amount":     bid.Amount,
	})
}

// GetBidHandler handles GET /bids/:bid_id
func (h *MarketHandler) GetBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseIDParam(c, "bid_id")
	if err != nil {
		helpers.HandleBindError(c, "GetBidHandler", err)
		return
	}

	bid, err := h.service.GetBid(bidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": bidID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid retrieved successfully")
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *MarketHandler) AcceptBidHandler(c *gin.Context) {
	bidID, err := helpers.ParseIDParam(c, "bid_id")
	if err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}
	caller := helpers.CallerAccount(c)

	project, err := h.service.AcceptBid(bidID, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptBidHandler: failed to accept bid", map[string]any{
			"bid_id": bidID,
			"caller": caller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProjectResponse(project), "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":     bidID,
		"project_id": project.ProjectID,
		"new_owner":  project.Owner,
	})
}

// MarkMilestoneHandler handles POST /projects/:project_id/milestones/:index
func (h *MarketHandler) MarkMilestoneHandler(c *gin.Context) {
	projectID, err := helpers.ParseIDParam(c, "project_id")
	if err != nil {
		helpers.HandleBindError(c, "MarkMilestoneHandler", err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		helpers.HandleBindError(c, "MarkMilestoneHandler", fmt.Errorf("invalid index %q: %w", c.Param("index"), err))
		return
	}
	caller := helpers.CallerAccount(c)

	project, err := h.service.MarkMilestone(projectID, index, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("MarkMilestoneHandler: failed to mark milestone", map[string]any{
			"project_id": projectID,
			"index":      index,
			"caller":     caller,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToProjectResponse(project), "milestone marked successfully")
	helpers.LogSuccess("MarkMilestoneHandler", "milestone marked successfully", map[string]any{
		"project_id": projectID,
		"index":      index,
	})
}

// CompleteProjectHandler handles POST /projects/:project_id/complete
func (h *MarketHandler) CompleteProjectHandler(c *gin.Context) {
	projectID, err := helpers.ParseIDParam(c, "project_id")
	if err != nil {
		helpers.HandleBindError(c, "CompleteProjectHandler", err)
		return
	}
	caller := helpers.CallerAccount(c)

	if err := h.service.CompleteProject(projectID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CompleteProjectHandler: failed to complete project", map[string]any{
			"project_id": projectID,
			"caller":     caller,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"project_id": projectID}, "project completion recorded")
	helpers.LogSuccess("CompleteProjectHandler", "project completion recorded", map[string]any{
		"project_id": projectID,
		"caller":     caller,
	})
}

// GetTreasuryHandler handles GET /treasury
func (h *MarketHandler) GetTreasuryHandler(c *gin.Context) {
	resp := helpers.TreasuryResponse{
		Balance: h.service.Treasury(),
		Stopped: h.service.Stopped(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "treasury retrieved successfully")
}

// WithdrawHandler handles POST /treasury/withdraw
func (h *MarketHandler) WithdrawHandler(c *gin.Context) {
	caller := helpers.CallerAccount(c)

	amount, err := h.service.Withdraw(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("WithdrawHandler: withdrawal rejected", map[string]any{
			"caller": caller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WithdrawResponse{Amount: amount, Owner: caller}, "treasury withdrawn successfully")
	helpers.LogSuccess("WithdrawHandler", "treasury withdrawn successfully", map[string]any{
		"owner":  caller,
		"amount": amount,
	})
}

// ToggleActiveHandler handles POST /admin/toggle-active
func (h *MarketHandler) ToggleActiveHandler(c *gin.Context) {
	caller := helpers.CallerAccount(c)

	stopped, err := h.service.ToggleActive(caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ToggleActiveHandler: toggle rejected", map[string]any{
			"caller": caller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToggleResponse{Stopped: stopped}, "emergency stop toggled")
	helpers.LogSuccess("ToggleActiveHandler", "emergency stop toggled", map[string]any{
		"caller":  caller,
		"stopped": stopped,
	})
}

// GetEventsHandler handles GET /events
func (h *MarketHandler) GetEventsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.Events(), "events retrieved successfully")
}

// GetProjectEventsHandler handles GET /projects/:project_id/events
func (h *MarketHandler) GetProjectEventsHandler(c *gin.Context) {
	projectID, err := helpers.ParseIDParam(c, "project_id")
	if err != nil {
		helpers.HandleBindError(c, "GetProjectEventsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, h.service.EventsForProject(projectID), "events retrieved successfully")
}

// GetBidEventsHandler handles GET /bids/:bid_id/events
func (h *MarketHandler) GetBidEventsHandler(c *gin.Context) {
	bidID, err := helpers.ParseIDParam(c, "bid_id")
	if err != nil {
		helpers.HandleBindError(c, "GetBidEventsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, h.service.EventsForBid(bidID), "events retrieved successfully")
}
