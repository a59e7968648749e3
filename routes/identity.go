package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"velora/db"
	"velora/models"
)

const (
	sessionCookie = "velora_session"
	sessionTTL    = 14 * 24 * time.Hour
)

// Identity is the explicit request identity every cart/order operation takes:
// an authenticated user id, or an anonymous session token, never both ways at
// once. Token is empty until the visitor first touches the cart.
type Identity struct {
	UserID *uint
	Token  string
}

func (id Identity) Authenticated() bool {
	return id.UserID != nil
}

// currentIdentity resolves the visitor from the session cookie without
// creating anything. Missing or expired sessions yield an empty identity.
func currentIdentity(c *fiber.Ctx) Identity {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return Identity{}
	}

	var session models.Session
	if err := db.DB.First(&session, "token = ?", token).Error; err != nil {
		return Identity{}
	}
	if session.ExpiresAt.Before(time.Now()) {
		db.DB.Delete(&session)
		return Identity{}
	}
	return Identity{UserID: session.UserID, Token: session.Token}
}

// ensureIdentity resolves the visitor, minting an anonymous session token on
// first use (lazy creation: browsing alone never writes a session).
func ensureIdentity(c *fiber.Ctx) (Identity, error) {
	ident := currentIdentity(c)
	if ident.Token != "" {
		return ident, nil
	}

	session := models.Session{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := db.DB.Create(&session).Error; err != nil {
		return Identity{}, err
	}
	setSessionCookie(c, session.Token)
	return Identity{Token: session.Token}, nil
}

// loginIdentity binds the visitor's session to a user, reusing the anonymous
// token when one exists so the cart cookie stays stable. Any cart the token
// owns is handed to the user at the same time.
func loginIdentity(c *fiber.Ctx, userID uint) error {
	token := c.Cookies(sessionCookie)
	expires := time.Now().Add(sessionTTL)

	if token != "" {
		if err := claimCart(token, userID); err != nil {
			return err
		}
		var session models.Session
		if err := db.DB.First(&session, "token = ?", token).Error; err == nil {
			session.UserID = &userID
			session.ExpiresAt = expires
			if err := db.DB.Save(&session).Error; err != nil {
				return err
			}
			setSessionCookie(c, session.Token)
			return nil
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    &userID,
		ExpiresAt: expires,
	}
	if err := db.DB.Create(&session).Error; err != nil {
		return err
	}
	setSessionCookie(c, session.Token)
	return nil
}

func clearIdentity(c *fiber.Ctx) {
	token := c.Cookies(sessionCookie)
	if token != "" {
		db.DB.Delete(&models.Session{}, "token = ?", token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// requireUser loads the authenticated user or answers 401.
func requireUser(c *fiber.Ctx) (*models.User, bool) {
	ident := currentIdentity(c)
	if !ident.Authenticated() {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
		return nil, false
	}

	var user models.User
	if err := db.DB.First(&user, *ident.UserID).Error; err != nil {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
		return nil, false
	}
	return &user, true
}
