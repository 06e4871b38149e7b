package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/database"
	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/middleware"
	"github.com/iansaccar7/casasbr-rental/internal/modules/auth"
	"github.com/iansaccar7/casasbr-rental/internal/modules/booking"
	"github.com/iansaccar7/casasbr-rental/internal/modules/favorite"
	"github.com/iansaccar7/casasbr-rental/internal/modules/message"
	"github.com/iansaccar7/casasbr-rental/internal/modules/property"
	"github.com/iansaccar7/casasbr-rental/internal/modules/review"
	jwtsvc "github.com/iansaccar7/casasbr-rental/internal/pkg/jwt"
	"github.com/iansaccar7/casasbr-rental/internal/repository"
)

type suite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func newSuite(t *testing.T) *suite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Favorite{},
		&domain.Message{},
	))

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	propertyHandler := property.NewHandler(property.NewService(propertyRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, propertyRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, propertyRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo, propertyRepo))

	hub := message.NewHub()
	messageHandler := message.NewHandler(message.NewService(messageRepo, userRepo, hub), hub, j)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	propertyHandler.RegisterPublicRoutes(v1)
	bookingHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))
	{
		authHandler.RegisterProtectedRoutes(protected)
		propertyHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterProtectedRoutes(protected)
		reviewHandler.RegisterProtectedRoutes(protected)
		favoriteHandler.RegisterProtectedRoutes(protected)
		messageHandler.RegisterProtectedRoutes(protected)
	}

	return &suite{router: r, db: db, jwt: j}
}

func (s *suite) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) *apiResponse {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "unparseable body: %s", w.Body.String())
	return &resp
}

// register creates a user through the API and returns their token.
func (s *suite) register(t *testing.T, email, name string) string {
	t.Helper()

	w := s.request(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"email":    email,
		"password": "senha12345",
		"name":     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	w = s.request(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "senha12345",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	return resp.Data["token"].(string)
}

// createProperty inserts a listing through the API and returns its id.
func (s *suite) createProperty(t *testing.T, token, title string, price int64) int64 {
	t.Helper()

	w := s.request(t, "POST", "/api/v1/properties", map[string]interface{}{
		"title":           title,
		"property_type":   "casa",
		"address":         "Rua Teste, 1",
		"city":            "Florianopolis",
		"state":           "SC",
		"price_per_night": price,
		"max_guests":      4,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, "property create failed: %s", w.Body.String())

	resp := parse(t, w)
	p := resp.Data["property"].(map[string]interface{})
	return int64(p["id"].(float64))
}

func TestAuthFlow(t *testing.T) {
	s := newSuite(t)

	t.Run("register and login", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/auth/register", map[string]interface{}{
			"email":    "ana@example.com.br",
			"password": "senha12345",
			"name":     "Ana Souza",
		}, "")
		assert.Equal(t, http.StatusCreated, w.Code)

		resp := parse(t, w)
		assert.True(t, resp.Success)
		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "user", user["role"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/auth/register", map[string]interface{}{
			"email":    "ana@example.com.br",
			"password": "outrasenha1",
			"name":     "Ana Clone",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		resp := parse(t, w)
		assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
	})

	t.Run("me requires token", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/users/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me returns profile", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "ana@example.com.br",
			"password": "senha12345",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		token := parse(t, w).Data["token"].(string)

		w = s.request(t, "GET", "/api/v1/users/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "ana@example.com.br", user["email"])
	})
}

func TestPropertyAndBookingFlow(t *testing.T) {
	s := newSuite(t)

	ownerToken := s.register(t, "dono@example.com.br", "Dono da Casa")
	guestToken := s.register(t, "hospede@example.com.br", "Hospede")

	propertyID := s.createProperty(t, ownerToken, "Casa de praia", 25000)

	t.Run("listing is public", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/properties", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		assert.EqualValues(t, 1, resp.Data["total"])
	})

	t.Run("availability before any booking", func(t *testing.T) {
		w := s.request(t, "GET", fmt.Sprintf(
			"/api/v1/bookings/availability?property_id=%d&check_in=2025-06-01&check_out=2025-06-05", propertyID), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		assert.Equal(t, true, resp.Data["available"])
	})

	t.Run("create booking recomputes price", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"property_id": propertyID,
			"check_in":    "2025-06-01T00:00:00Z",
			"check_out":   "2025-06-05T00:00:00Z",
			"guests":      2,
			"total_price": 1, // ignored by the server
		}, guestToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parse(t, w)
		b := resp.Data["booking"].(map[string]interface{})
		assert.EqualValues(t, 100000, b["total_price"])
		assert.Equal(t, "pending", b["status"])
		assert.Equal(t, "pending", b["payment_status"])
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"property_id": propertyID,
			"check_in":    "2025-06-03T00:00:00Z",
			"check_out":   "2025-06-07T00:00:00Z",
			"guests":      2,
		}, ownerToken)
		assert.Equal(t, http.StatusConflict, w.Code)

		resp := parse(t, w)
		assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)
	})

	t.Run("back to back booking is allowed", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"property_id": propertyID,
			"check_in":    "2025-06-05T00:00:00Z",
			"check_out":   "2025-06-08T00:00:00Z",
			"guests":      2,
		}, ownerToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("inverted date range is rejected", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"property_id": propertyID,
			"check_in":    "2025-07-10T00:00:00Z",
			"check_out":   "2025-07-05T00:00:00Z",
			"guests":      2,
		}, guestToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("my bookings", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/bookings/my", nil, guestToken)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		bookings := resp.Data["bookings"].([]interface{})
		assert.Len(t, bookings, 1)
	})

	t.Run("stranger cannot read the booking", func(t *testing.T) {
		strangerToken := s.register(t, "curioso@example.com.br", "Curioso")

		w := s.request(t, "GET", "/api/v1/bookings/1", nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("status update accepts any valid value", func(t *testing.T) {
		w := s.request(t, "PATCH", "/api/v1/bookings/1/status", map[string]interface{}{
			"status": "confirmed",
		}, guestToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.request(t, "PATCH", "/api/v1/bookings/1/status", map[string]interface{}{
			"status": "archived",
		}, guestToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewFlow(t *testing.T) {
	s := newSuite(t)

	ownerToken := s.register(t, "dono@example.com.br", "Dono")
	guestToken := s.register(t, "hospede@example.com.br", "Hospede")
	otherToken := s.register(t, "outro@example.com.br", "Outro Hospede")

	propertyID := s.createProperty(t, ownerToken, "Apartamento central", 18000)

	t.Run("reviews update the listing aggregate", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/reviews", map[string]interface{}{
			"property_id": propertyID,
			"rating":      5,
			"comment":     "Perfeito!",
		}, guestToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.request(t, "POST", "/api/v1/reviews", map[string]interface{}{
			"property_id": propertyID,
			"rating":      4,
		}, otherToken)
		assert.Equal(t, http.StatusCreated, w.Code)

		w = s.request(t, "GET", fmt.Sprintf("/api/v1/properties/%d", propertyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		p := resp.Data["property"].(map[string]interface{})
		// mean of 5 and 4 is 4.5, stored as 450
		assert.EqualValues(t, 450, p["rating"])
		assert.EqualValues(t, 2, p["review_count"])
	})

	t.Run("out of range rating is rejected", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/reviews", map[string]interface{}{
			"property_id": propertyID,
			"rating":      6,
		}, guestToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("property reviews are public", func(t *testing.T) {
		w := s.request(t, "GET", fmt.Sprintf("/api/v1/reviews/property/%d", propertyID), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		reviews := resp.Data["reviews"].([]interface{})
		assert.Len(t, reviews, 2)
	})
}

func TestFavoriteFlow(t *testing.T) {
	s := newSuite(t)

	ownerToken := s.register(t, "dono@example.com.br", "Dono")
	guestToken := s.register(t, "fa@example.com.br", "Fa de Casas")

	propertyID := s.createProperty(t, ownerToken, "Kitnet charmosa", 9000)

	t.Run("add favorite", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/favorites", map[string]interface{}{
			"property_id": propertyID,
		}, guestToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("duplicate favorite is a conflict", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/favorites", map[string]interface{}{
			"property_id": propertyID,
		}, guestToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("check and list", func(t *testing.T) {
		w := s.request(t, "GET", fmt.Sprintf("/api/v1/favorites/check?property_id=%d", propertyID), nil, guestToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, parse(t, w).Data["is_favorite"])

		w = s.request(t, "GET", "/api/v1/favorites", nil, guestToken)
		assert.Equal(t, http.StatusOK, w.Code)
		favorites := parse(t, w).Data["favorites"].([]interface{})
		assert.Len(t, favorites, 1)
	})

	t.Run("remove favorite", func(t *testing.T) {
		w := s.request(t, "DELETE", fmt.Sprintf("/api/v1/favorites/%d", propertyID), nil, guestToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = s.request(t, "DELETE", fmt.Sprintf("/api/v1/favorites/%d", propertyID), nil, guestToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMessageFlow(t *testing.T) {
	s := newSuite(t)

	hostToken := s.register(t, "anfitriao@example.com.br", "Anfitriao")
	guestToken := s.register(t, "viajante@example.com.br", "Viajante")

	t.Run("send and receive", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/messages", map[string]interface{}{
			"receiver_id": 1,
			"subject":     "Check-in tardio",
			"body":        "Posso chegar depois das 22h?",
		}, guestToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = s.request(t, "GET", "/api/v1/messages", nil, hostToken)
		assert.Equal(t, http.StatusOK, w.Code)
		messages := parse(t, w).Data["messages"].([]interface{})
		assert.Len(t, messages, 1)
	})

	t.Run("only the receiver marks as read", func(t *testing.T) {
		w := s.request(t, "PATCH", "/api/v1/messages/1/read", nil, guestToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = s.request(t, "PATCH", "/api/v1/messages/1/read", nil, hostToken)
		assert.Equal(t, http.StatusOK, w.Code)

		msg := parse(t, w).Data["message"].(map[string]interface{})
		assert.Equal(t, true, msg["is_read"])
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
