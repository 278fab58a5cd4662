package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// Keys set on the gin context by Authenticate
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

// Authenticate validates the Bearer JWT issued by the token endpoint and
// puts the caller identity on the context. Tokens must be HMAC signed and
// carry uid and role claims.
func Authenticate(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithOAuth2Error(c, "authorization_required", "Missing Authorization header. A valid Bearer token is required.")
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortWithOAuth2Error(c, models.ErrInvalidRequest, "Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if token = strings.TrimSpace(token); token == "" {
			abortWithOAuth2Error(c, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		claims, err := parseToken(token, jwtSecret, time.Now())
		if err != nil {
			abortWithOAuth2Error(c, models.ErrInvalidToken, err.Error())
			return
		}
		if err := setIdentity(c, claims); err != nil {
			abortWithOAuth2Error(c, models.ErrInvalidToken, err.Error())
			return
		}
		c.Next()
	}
}

func abortWithOAuth2Error(c *gin.Context, code, description string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewOAuth2Error(code, description))
}

func parseToken(tokenString string, secret []byte, now time.Time) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// only HMAC keys are ever issued; anything else is an algorithm swap
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return nil, errors.Wrap(err, "token parsing failed")
	}

	// jwt only checks iat when asked to, and then without leeway
	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(err, "invalid iat claim")
	}
	if iat != nil && iat.After(now) {
		return nil, errors.New("token issued in the future")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) error {
	userID, err := userIDClaim(claims)
	if err != nil {
		return err
	}
	role, err := roleClaim(claims)
	if err != nil {
		return err
	}
	c.Set(ContextUserID, userID)
	c.Set(ContextUserRole, role)

	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 {
		c.Set(ContextClientID, aud[0])
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set(ContextScopes, scope)
	}
	return nil
}

func userIDClaim(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		id, err := strconv.ParseUint(uid, 10, 32)
		if err != nil || id == 0 {
			return 0, errors.Errorf("invalid uid claim %q", uid)
		}
		return uint(id), nil
	case float64:
		if uid < 1 || uid != float64(uint32(uid)) {
			return 0, errors.Errorf("invalid uid claim %v", uid)
		}
		return uint(uid), nil
	default:
		return 0, errors.New("token missing required 'uid' claim")
	}
}

func roleClaim(claims jwt.MapClaims) (string, error) {
	role, _ := claims["role"].(string)
	switch role {
	case models.RoleAdmin, models.RoleUser:
		return role, nil
	case "":
		return "", errors.New("token missing required 'role' claim")
	default:
		return "", errors.Errorf("invalid role %q", role)
	}
}
