package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iansaccar7/casasbr-rental/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/favorites", h.Add)
	rg.DELETE("/favorites/:propertyId", h.Remove)
	rg.GET("/favorites", h.GetMyFavorites)
	rg.GET("/favorites/check", h.Check)
}

type addFavoriteRequest struct {
	PropertyID int64 `json:"property_id" binding:"required"`
}

func (h *Handler) Add(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	favorite, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req.PropertyID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProperty):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case errors.Is(err, ErrAlreadyExists):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Property is already in your favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": favorite})
}

func (h *Handler) Remove(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Param("propertyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), propertyID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) GetMyFavorites(c *gin.Context) {
	favorites, err := h.service.GetMyFavorites(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites})
}

func (h *Handler) Check(c *gin.Context) {
	propertyID, err := strconv.ParseInt(c.Query("property_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	isFavorite, err := h.service.IsFavorite(c.Request.Context(), c.GetInt64("user_id"), propertyID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to check favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_favorite": isFavorite})
}
