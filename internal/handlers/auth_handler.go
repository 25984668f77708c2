package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/slugify"
	"github.com/barberbook/barberbook-api/internal/timezone"
	"github.com/barberbook/barberbook-api/internal/validators"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// DNS-backed email checks are skipped in tests.
	checkEmailDomain bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, checkEmailDomain: true}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	ShopName string `json:"shop_name" binding:"required"`
	City     string `json:"city" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.checkEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	h.db.Model(&models.Barber{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Registration failed.")
		return
	}

	slug := slugify.FromShopName(req.ShopName)
	if slug == "" {
		httperr.BadRequest(c, "invalid_shop_name", "Shop name yields an empty slug.")
		return
	}

	// Any profile whose slug starts with ours forces a unique suffix.
	var slugCount int64
	h.db.Model(&models.BarberProfile{}).
		Where("slug LIKE ?", slug+"%").
		Count(&slugCount)
	if slugCount > 0 {
		slug = slugify.WithSuffix(slug)
	}

	var barber models.Barber
	var profile models.BarberProfile

	err = h.db.Transaction(func(tx *gorm.DB) error {
		barber = models.Barber{
			Email:        email,
			PasswordHash: string(hashed),
		}
		if err := tx.Create(&barber).Error; err != nil {
			return err
		}

		profile = models.BarberProfile{
			BarberID: barber.ID,
			ShopName: req.ShopName,
			Slug:     slug,
			City:     req.City,
			Currency: "EUR",
			Locale:   "en",
			Timezone: timezone.DefaultTimezone,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		httperr.Internal(c, "registration_failed", "Registration failed.")
		return
	}

	token, err := h.generateToken(&barber, &profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Registration failed.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barber": gin.H{
			"id":    barber.ID,
			"email": barber.Email,
		},
		"profile": gin.H{
			"id":        profile.ID,
			"shop_name": profile.ShopName,
			"slug":      profile.Slug,
			"city":      profile.City,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var barber models.Barber
	if err := h.db.Where("email = ?", email).First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Login failed.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("barber_id = ?", barber.ID).First(&profile).Error; err != nil {
		httperr.Internal(c, "profile_not_found", "Login failed.")
		return
	}

	token, err := h.generateToken(&barber, &profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Login failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": gin.H{
			"id":    barber.ID,
			"email": barber.Email,
		},
		"profile": gin.H{
			"id":        profile.ID,
			"shop_name": profile.ShopName,
			"slug":      profile.Slug,
			"city":      profile.City,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(barber *models.Barber, profile *models.BarberProfile) (string, error) {
	claims := jwt.MapClaims{
		"sub":       barber.ID,
		"profileId": profile.ID,
		"exp":       time.Now().Add(sessionTTL).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
