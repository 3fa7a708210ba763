package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/providers/liteapi"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type HotelsController struct {
	catalogService services.CatalogServiceInterface
}

func NewHotelsController(catalogService services.CatalogServiceInterface) *HotelsController {
	return &HotelsController{
		catalogService: catalogService,
	}
}

// SearchRates godoc
// @Summary Search hotel rates
// @Description Search hotel rates by place, hotel ids, or free-text AI search
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body liteapi.RatesRequest true "Rates search parameters"
// @Success 200 {object} liteapi.RatesResponse
// @Failure 400 {object} utils.APIResponse
// @Router /rates [post]
func (h *HotelsController) SearchRates(c *gin.Context) {
	var req liteapi.RatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rates, err := h.catalogService.SearchRates(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rates, "Rates fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places
// @Description Resolve a free-text destination to hotel inventory place ids
// @Tags Hotels
// @Produce json
// @Param q query string true "Destination text"
// @Success 200 {object} liteapi.PlacesResponse
// @Failure 400 {object} utils.APIResponse
// @Router /places [get]
func (h *HotelsController) SearchPlaces(c *gin.Context) {
	places, err := h.catalogService.SearchPlaces(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// GetHotelDetails godoc
// @Summary Get hotel details
// @Description Fetch full details for one hotel by its inventory id
// @Tags Hotels
// @Produce json
// @Param hotelId query string true "Hotel ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} utils.APIResponse
// @Router /hotel [get]
func (h *HotelsController) GetHotelDetails(c *gin.Context) {
	details, err := h.catalogService.GetHotelDetails(c.Request.Context(), c.Query("hotelId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Hotel details fetched successfully")
}
