package auth

import (
	"context"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// StaffTokenGenerator issues JWT access tokens for OAuth clients. The uid
// claim is the id of the staff member owning the client and the role claim
// is read from that staff record on every issue.
type StaffTokenGenerator struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	staff        StaffLookup
}

func NewStaffTokenGenerator(key []byte, method jwt.SigningMethod, staff StaffLookup) *StaffTokenGenerator {
	return &StaffTokenGenerator{SignedKey: key, SignedMethod: method, staff: staff}
}

// Token implements oauth2.AccessGenerate
func (g *StaffTokenGenerator) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", errors.New("client is not owned by a staff member")
	}

	role, err := g.role(ctx, userID)
	if err != nil {
		return "", "", err
	}

	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud":  data.Client.GetID(),
		"iat":  createdAt.Unix(),
		"exp":  createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
		"uid":  userID,
		"role": role,
	}
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}

	var refresh string
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"id":  access,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", errors.Wrap(err, "sign refresh token")
		}
	}
	return access, refresh, nil
}

func (g *StaffTokenGenerator) role(ctx context.Context, userID string) (string, error) {
	id, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		return "", errors.Wrapf(err, "invalid staff id %q", userID)
	}
	staff, err := g.staff.GetStaffByID(ctx, uint(id))
	if err != nil {
		return "", errors.Wrapf(err, "load staff %d", id)
	}
	if staff.Role == "" {
		return models.RoleUser, nil
	}
	return staff.Role, nil
}
