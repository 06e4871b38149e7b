package message

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iansaccar7/casasbr-rental/internal/pkg/jwt"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

type Handler struct {
	service    *Service
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(service *Service, hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{
		service:    service,
		hub:        hub,
		jwtService: jwtService,
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/messages", h.Send)
	rg.GET("/messages", h.GetMyMessages)
	rg.PATCH("/messages/:id/read", h.MarkAsRead)
}

// RegisterWebSocket mounts the push endpoint outside the JWT middleware;
// browsers can't set headers on websocket dials, so the token rides in
// the query string instead.
func (h *Handler) RegisterWebSocket(r gin.IRouter) {
	r.GET("/ws", h.WebSocket)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.Send(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message body is required and you can't message yourself")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Receiver not found")
		default:
			response.Error(c, http.StatusInternalServerError, "SEND_FAILED", "Failed to send message")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) GetMyMessages(c *gin.Context) {
	messages, err := h.service.GetMyMessages(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	msg, err := h.service.MarkAsRead(c.Request.Context(), messageID, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the receiver can mark a message as read")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark message as read")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Token query parameter is required")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(claims.UserID, conn)

	// Drain the connection until the client goes away. Clients only
	// receive pushes; anything they send is discarded.
	go func() {
		defer h.hub.Unregister(claims.UserID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
