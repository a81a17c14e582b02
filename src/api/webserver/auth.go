package webserver

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

type Auth struct {
	apiKey    string
	jwtSecret []byte
}

func NewAuth(apiKey string, secret []byte) Auth {
	return Auth{apiKey: apiKey, jwtSecret: secret}
}

// Login exchanges the service API key for a short-lived JWT.
func (a Auth) Login(c *gin.Context) {
	var req struct {
		APIKey string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(a.apiKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"err": "invalid api key"})
		return
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, ClientClaims{
		Client: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := tok.SignedString(a.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": "token signing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}
