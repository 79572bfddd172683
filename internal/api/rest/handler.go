package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-marketplace-api/internal/api/shared/executor"
	"github.com/feral-file/ff-marketplace-api/internal/dataloader"
	"github.com/feral-file/ff-marketplace-api/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetNft retrieves a single NFT by its metadata address
	// GET /api/v1/nfts/:address?expand=creators,attributes,offers,listings,purchases,collection,owner_profile
	GetNft(c *gin.Context)

	// ListNfts retrieves NFTs with optional filters, ordered by listing price then name
	// GET /api/v1/nfts?owner=<address>&creator=<address>&attribute=<trait>:<value1>|<value2>&listed=<bool>&with_offers=<bool>&limit=<limit>&offset=<offset>&expand=<expand>
	ListNfts(c *gin.Context)

	// GetActivities retrieves the listing and purchase feed of NFTs
	// GET /api/v1/activities?address=<address1>,<address2>
	GetActivities(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// GetNft retrieves a single NFT by its metadata address
func (h *handler) GetNft(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		respondBadRequest(c, "NFT address is required")
		return
	}

	// Validate address
	if !domain.ValidAddress(address) {
		respondBadRequest(c, "Invalid NFT address")
		return
	}

	// Parse query parameters
	queryParams, err := ParseGetNftQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Validate query parameters
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	nftDTO, err := h.executor.GetNft(ctx, dataloader.FromContext(ctx), address, queryParams.Expand)
	if err != nil {
		respondExecutorError(c, err, "Failed to get nft")
		return
	}

	c.JSON(http.StatusOK, nftDTO)
}

// ListNfts retrieves NFTs with optional filters
func (h *handler) ListNfts(c *gin.Context) {
	// Parse query parameters
	queryParams, err := ParseListNftsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Validate query parameters
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := queryParams.Filter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	response, err := h.executor.ListNfts(ctx, dataloader.FromContext(ctx), filter, queryParams.Expand)
	if err != nil {
		respondExecutorError(c, err, "Failed to list nfts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetActivities retrieves the activity feed of NFTs
func (h *handler) GetActivities(c *gin.Context) {
	// Parse query parameters
	queryParams, err := ParseGetActivitiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Validate query parameters
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	response, err := h.executor.GetActivities(ctx, dataloader.FromContext(ctx), queryParams.Addresses)
	if err != nil {
		respondExecutorError(c, err, "Failed to get activities")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-marketplace-api",
	})
}
