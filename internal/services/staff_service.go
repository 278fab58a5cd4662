package services

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.Staff) error
	GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetStaffByID(ctx context.Context, id uint) (*models.Staff, error)
}

type staffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) StaffService {
	return &staffService{db: db}
}

func (s *staffService) CreateStaff(ctx context.Context, staff *models.Staff) error {
	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if staff.Email == "" {
		return errors.Wrap(ErrInvalidStaff, "email is required")
	}
	switch staff.Role {
	case "":
		staff.Role = models.RoleUser
	case models.RoleAdmin, models.RoleUser:
	default:
		return errors.Wrapf(ErrInvalidStaff, "unknown role %q", staff.Role)
	}

	db := s.db.WithContext(ctx)
	var existing models.Staff
	err := db.Where("email = ?", staff.Email).First(&existing).Error
	switch {
	case err == nil:
		return errors.Wrap(ErrStaffAlreadyExists, staff.Email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(err, "check staff email")
	}

	if err := db.Create(staff).Error; err != nil {
		return errors.Wrap(err, "create staff")
	}
	return nil
}

func (s *staffService) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errors.Wrap(err, "find staff by email")
	}
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, errors.Wrapf(err, "find staff %d", id)
	}
	return &staff, nil
}
