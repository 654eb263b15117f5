package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartscout/backend/internal/domain"
	"github.com/cartscout/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	items   *usecase.ItemService
	prices  *usecase.PriceService
	planner *usecase.PlannerService
	auth    *usecase.AuthService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	items *usecase.ItemService,
	prices *usecase.PriceService,
	planner *usecase.PlannerService,
	auth *usecase.AuthService,
) *Handler {
	return &Handler{
		items:   items,
		prices:  prices,
		planner: planner,
		auth:    auth,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cartscout-backend",
		"version": "1.0.0",
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account and returns a bearer token
func (h *Handler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[HTTP] signup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// LogIn verifies credentials and returns a bearer token
func (h *Handler) LogIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.auth.LogIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// ListItems returns the caller's grocery list, sorted by name
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("[HTTP] list items failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem validates and stores a new grocery item
func (h *Handler) AddItem(c *gin.Context) {
	var input usecase.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.items.Add(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidItem) || errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] add item failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveItem deletes a grocery item from the caller's list
func (h *Handler) RemoveItem(c *gin.Context) {
	err := h.items.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[HTTP] remove item failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPrices returns the full price catalog
func (h *Handler) ListPrices(c *gin.Context) {
	records, err := h.prices.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[HTTP] list prices failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": records})
}

type importPricesRequest struct {
	Records []domain.PriceRecord `json:"records"`
}

// ImportPrices bulk-inserts price records into the catalog
func (h *Handler) ImportPrices(c *gin.Context) {
	var req importPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.prices.Import(c.Request.Context(), req.Records); err != nil {
		if errors.Is(err, domain.ErrInvalidPriceRecord) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] import prices failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import prices"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": len(req.Records)})
}

type planRequest struct {
	MaxStores int `json:"maxStores"`
}

// ComputePlan loads the caller's grocery list and the price catalog and
// returns the cheapest shopping plan for at most maxStores stores. A missing
// or unparseable store count falls back to 1; out-of-range values are
// clamped by the planner.
func (h *Handler) ComputePlan(c *gin.Context) {
	req := planRequest{MaxStores: 1}
	if err := c.ShouldBindJSON(&req); err != nil {
		req.MaxStores = 1
	}

	ctx := c.Request.Context()

	items, err := h.items.List(ctx, currentUserID(c))
	if err != nil {
		log.Printf("[HTTP] compute plan: loading items failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load items"})
		return
	}

	prices, err := h.prices.ListAll(ctx)
	if err != nil {
		log.Printf("[HTTP] compute plan: loading prices failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load prices"})
		return
	}

	plan, err := h.planner.ComputeBestPlan(ctx, items, prices, req.MaxStores)
	if err != nil {
		// Only context cancellation reaches here
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "plan computation interrupted"})
		return
	}

	if plan == nil {
		c.JSON(http.StatusOK, gin.H{
			"plan":    nil,
			"message": "no matching prices found; try increasing the number of stores",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// currentUserID returns the authenticated user ID, or the guest bucket for
// unauthenticated requests
func currentUserID(c *gin.Context) string {
	if userID := c.GetString("userID"); userID != "" {
		return userID
	}
	return domain.GuestUserID
}
