package property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iansaccar7/casasbr-rental/internal/pkg/response"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.List)
	rg.GET("/properties/search", h.Search)
	rg.GET("/properties/featured", h.Featured)
	rg.GET("/properties/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties/my", h.GetMyProperties)
	rg.POST("/properties", h.Create)
	rg.PUT("/properties/:id", h.Update)
	rg.DELETE("/properties/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.PropertyFilters{
		City:         c.Query("city"),
		State:        c.Query("state"),
		PropertyType: c.Query("property_type"),
	}
	f.MinPrice, _ = strconv.ParseInt(c.Query("min_price"), 10, 64)
	f.MaxPrice, _ = strconv.ParseInt(c.Query("max_price"), 10, 64)
	f.Bedrooms, _ = strconv.Atoi(c.Query("bedrooms"))
	f.MaxGuests, _ = strconv.Atoi(c.Query("max_guests"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}

	properties, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list properties")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Properties: properties,
		Total:      total,
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
}

func (h *Handler) Search(c *gin.Context) {
	properties, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to search properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) Featured(c *gin.Context) {
	properties, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get featured properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) GetMyProperties(c *gin.Context) {
	properties, err := h.service.GetMyProperties(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get properties")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create property")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": p})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"), req)
	if err != nil {
		handlePropertyError(c, err, "Failed to update property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": p})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role")); err != nil {
		handlePropertyError(c, err, "Failed to delete property")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func handlePropertyError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this property")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
