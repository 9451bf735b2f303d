package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rural-health-assistant/internal/auth"
	"rural-health-assistant/internal/middleware"
	"rural-health-assistant/internal/models"
)

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login handles POST /login. Bad credentials are a normal answer
// ({success:false}), not an HTTP error.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Password == "" {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	candidates, err := h.store.FindUsersByName(c.Request.Context(), req.Name)
	if err != nil {
		h.report(c, "Login error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	user := matchPassword(candidates, req.Password)
	if user == nil {
		h.log.WithField("user", req.Name).Warn("login rejected")
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	token, err := h.tokens.Generate(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if h.sessions != nil {
		sessionID, err := h.sessions.Create(c.Request.Context(), auth.SessionData{
			UserID: user.ID.Hex(),
			Name:   user.Name,
			Role:   user.Role,
		})
		if err != nil {
			// the token alone is still a valid login
			h.log.WithError(err).Warn("session not created")
		} else {
			c.SetCookie(middleware.SessionCookie, sessionID, int(h.sessions.TTL().Seconds()), "/", "", false, true)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// matchPassword returns the first user whose stored password accepts attempt.
func matchPassword(users []models.User, attempt string) *models.User {
	for i := range users {
		if auth.CheckPassword(users[i].Password, attempt) {
			return &users[i]
		}
	}
	return nil
}

// Logout handles POST /logout: it ends the cookie session, if any. Issued
// tokens stay valid until they expire.
func (h *Handler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" && h.sessions != nil {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			h.fail(c, http.StatusInternalServerError, "Failed to log out", err)
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
