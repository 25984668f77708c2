package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/db"
	"github.com/barberbook/barberbook-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	h := NewAuthHandler(gdb, cfg)
	h.checkEmailDomain = false

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, gdb
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_CreatesBarberAndProfile(t *testing.T) {
	r, gdb := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", gin.H{
		"email":     "Owner@FadeFactory.test",
		"password":  "supersecret",
		"shop_name": "Fade Factory",
		"city":      "Berlin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Profile struct {
			Slug string `json:"slug"`
		} `json:"profile"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fade-factory", resp.Profile.Slug)
	assert.NotEmpty(t, resp.Token)

	// Email is stored lowercased.
	var barber models.Barber
	require.NoError(t, gdb.Where("email = ?", "owner@fadefactory.test").First(&barber).Error)

	var profile models.BarberProfile
	require.NoError(t, gdb.Where("barber_id = ?", barber.ID).First(&profile).Error)
	assert.Equal(t, "EUR", profile.Currency)
	assert.Equal(t, "en", profile.Locale)
	assert.Equal(t, "Europe/Berlin", profile.Timezone)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _ := newAuthRouter(t)

	body := gin.H{
		"email":     "owner@shop.test",
		"password":  "supersecret",
		"shop_name": "Shop One",
		"city":      "Berlin",
	}
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/register", body).Code)

	body["shop_name"] = "Shop Two"
	w := postJSON(r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email_already_registered")
}

func TestRegister_SlugCollisionGetsSuffix(t *testing.T) {
	r, _ := newAuthRouter(t)

	first := postJSON(r, "/api/auth/register", gin.H{
		"email":     "a@shop.test",
		"password":  "supersecret",
		"shop_name": "Fade Factory",
		"city":      "Berlin",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(r, "/api/auth/register", gin.H{
		"email":     "b@shop.test",
		"password":  "supersecret",
		"shop_name": "Fade Factory",
		"city":      "Skopje",
	})
	require.Equal(t, http.StatusCreated, second.Code)

	var resp struct {
		Profile struct {
			Slug string `json:"slug"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.NotEqual(t, "fade-factory", resp.Profile.Slug)
	assert.Contains(t, resp.Profile.Slug, "fade-factory-")
}

func TestRegister_ShortPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", gin.H{
		"email":     "owner@shop.test",
		"password":  "short",
		"shop_name": "Fade Factory",
		"city":      "Berlin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := newAuthRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/auth/register", gin.H{
		"email":     "owner@shop.test",
		"password":  "supersecret",
		"shop_name": "Fade Factory",
		"city":      "Berlin",
	}).Code)

	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "owner@shop.test",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	w = postJSON(r, "/api/auth/login", gin.H{
		"email":    "owner@shop.test",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}
