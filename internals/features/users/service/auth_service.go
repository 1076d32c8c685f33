package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Candratama/four-best-website-sub000/internals/configs"
	"github.com/Candratama/four-best-website-sub000/internals/features/users/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/users/model"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
	authMiddleware "github.com/Candratama/four-best-website-sub000/internals/middlewares/auth"
)

const accessTokenTTL = 24 * time.Hour

var validateAuth = validator.New()

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user model.AdminUserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueSession(c, &user)
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	// Cari by google_id dulu, fallback ke email (akun admin dibuat manual)
	var user model.AdminUserModel
	err = db.First(&user, "user_google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.First(&user, "user_email = ?", email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Admin tidak self-register lewat Google
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Google ini tidak terdaftar sebagai admin")
		}
		if err == nil {
			// Link google_id ke akun yang sudah ada
			if uerr := db.Model(&user).Update("user_google_id", googleID).Error; uerr == nil {
				user.UserGoogleID = &googleID
			}
		}
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if user.UserName == "" {
		user.UserName = name
	}

	return issueSession(c, &user)
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AccessCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Berhasil logout", nil)
}

// ========================== REGISTER ==========================
// POST /api/a/auth/register — hanya admin yang sudah login
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.AdminUserModel{
		UserName:     input.Name,
		UserEmail:    strings.ToLower(strings.TrimSpace(input.Email)),
		UserPassword: string(hash),
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	return helper.JsonCreated(c, "Admin dibuat", fiber.Map{
		"user_id": user.UserID,
		"email":   user.UserEmail,
	})
}

// issueSession membuat JWT akses lalu memasangnya sebagai http-only cookie.
func issueSession(c *fiber.Ctx, user *model.AdminUserModel) error {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       user.UserID,
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"role":      "admin",
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
		"jti":       randomHex(16),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AccessCookieName,
		Value:    token,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		UserID:      user.UserID,
		Name:        user.UserName,
		Email:       user.UserEmail,
		AccessToken: token,
	})
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))[:n*2]
	}
	return hex.EncodeToString(b)
}
