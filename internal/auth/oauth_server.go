package auth

import (
	"context"
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// DefaultAccessTokenTTL is the lifetime of client credentials access tokens
const DefaultAccessTokenTTL = 2 * time.Hour

// StaffLookup resolves the staff member an OAuth client acts for
type StaffLookup interface {
	GetStaffByID(ctx context.Context, id uint) (*models.Staff, error)
}

type OAuthService struct {
	server *server.Server
	log    logrus.FieldLogger
}

// NewOAuthService builds an OAuth2 server that only issues client
// credentials tokens. Tokens are HS256 JWTs carrying the role of the staff
// member that owns the client.
func NewOAuthService(db *gorm.DB, jwtSecret string, staff StaffLookup) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: DefaultAccessTokenTTL})
	manager.MapAccessGenerate(NewStaffTokenGenerator([]byte(jwtSecret), jwt.SigningMethodHS256, staff))
	manager.MustTokenStorage(NewGormTokenStore(db), nil)
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	o := &OAuthService{server: srv, log: logrus.StandardLogger()}
	srv.SetInternalErrorHandler(func(err error) *errors.Response {
		o.log.WithError(err).Error("OAuth2 internal error")
		return nil
	})
	srv.SetResponseErrorHandler(func(re *errors.Response) {
		o.log.WithFields(logrus.Fields{
			"error":  re.Error,
			"status": re.StatusCode,
		}).Debug("OAuth2 token request rejected")
	})
	return o
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}
