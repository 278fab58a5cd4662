package services

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// ClientRegistration describes a new OAuth2 client
type ClientRegistration struct {
	Name       string
	Domain     string
	Scopes     string
	GrantTypes string
}

type ClientService interface {
	// CreateClient registers a client for a staff member and returns it with
	// its plain secret. Only the bcrypt hash of the secret is stored.
	CreateClient(ctx context.Context, staffID uint, reg ClientRegistration) (*models.OAuthClient, string, error)
	GetClientsByStaffID(ctx context.Context, staffID uint) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID string, staffID uint) error
}

type clientService struct {
	db   *gorm.DB
	cost int
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db, cost: bcrypt.DefaultCost}
}

func (s *clientService) CreateClient(ctx context.Context, staffID uint, reg ClientRegistration) (*models.OAuthClient, string, error) {
	secret := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return nil, "", errors.Wrap(err, "hash client secret")
	}

	client := &models.OAuthClient{
		ID:         uuid.New().String(),
		Secret:     string(hashed),
		Name:       strings.TrimSpace(reg.Name),
		Domain:     reg.Domain,
		StaffID:    staffID,
		Scopes:     reg.Scopes,
		GrantTypes: reg.GrantTypes,
	}
	if client.Scopes == "" {
		client.Scopes = "read"
	}
	if client.GrantTypes == "" {
		client.GrantTypes = "client_credentials"
	}

	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, "", errors.Wrap(err, "create client")
	}
	return client, secret, nil
}

func (s *clientService) GetClientsByStaffID(ctx context.Context, staffID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("staff_id = ?", staffID).Order("created_at").Find(&clients).Error; err != nil {
		return nil, errors.Wrap(err, "list clients")
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errors.Wrap(err, "find client")
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string, staffID uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND staff_id = ?", clientID, staffID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete client")
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
