// controllers/auth.go
package controllers

import (
	"net/http"

	"cashback-backend/config"
	"cashback-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionSubject = "admin"

type LoginInput struct {
	Code string `json:"code" binding:"required"`
}

// AuthController exchanges the shared access code for a session token.
type AuthController struct {
	Auth         config.AuthConfig
	SecureCookie bool
	Log          logrus.FieldLogger
}

// Login checks the access code and issues the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if !utils.CheckAccessCode(input.Code, ac.Auth.AccessCode) {
		ac.Log.WithField("client_ip", c.ClientIP()).Warn("rejected login attempt")
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid access code")
		return
	}

	token, err := utils.GenerateToken(sessionSubject, ac.Auth.JWTSecret, ac.Auth.TokenTTL)
	if err != nil {
		ac.Log.WithError(err).Error("failed to sign session token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, token, int(ac.Auth.TokenTTL.Seconds()), "/", "", ac.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", ac.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports whether the caller holds a valid session.
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"subject":       c.GetString("session"),
	})
}
