package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /api/v1/oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if grantType := c.PostForm("grant_type"); grantType != string(oauth2.ClientCredentials) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType,
			"only the client_credentials grant is supported"))
		return
	}

	// the server writes both the token and any RFC 6749 error response itself
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		o.log.WithError(err).Error("Failed to write token response")
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, models.NewOAuth2Error("server_error", "token response failed"))
		}
	}
}
