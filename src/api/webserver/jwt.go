package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// clientKey is the gin context key carrying the authenticated client ID.
const clientKey = "client"

// ClientClaims is the token payload issued at login: an opaque per-session
// client ID plus standard expiry handling.
type ClientClaims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// JWTMiddleware authenticates bearer tokens and exposes the client ID to
// downstream handlers under the "client" context key.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims := &ClientClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims,
			func(t *jwt.Token) (interface{}, error) { return secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !tok.Valid || claims.Client == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(clientKey, claims.Client)
		c.Next()
	}
}
