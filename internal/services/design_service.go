package services

import (
	"fmt"

	"github.com/google/uuid"

	"interioai-backend/internal/models"
	"interioai-backend/internal/repository"
)

type IDesignService interface {
	SaveDesign(req *models.SaveDesignRequest) (*models.Design, error)
	GetUserDesigns(userID string) ([]*models.Design, error)
}

type DesignService struct {
	designRepo repository.IDesignRepository
	userRepo   repository.IUserRepository
}

func NewDesignService(designRepo repository.IDesignRepository, userRepo repository.IUserRepository) IDesignService {
	return &DesignService{
		designRepo: designRepo,
		userRepo:   userRepo,
	}
}

// SaveDesign persists a design after checking the owner exists. The user
// check runs first so a missing user wins over missing fields.
func (s *DesignService) SaveDesign(req *models.SaveDesignRequest) (*models.Design, error) {
	if _, err := s.userRepo.GetUserByID(req.UserID); err != nil {
		return nil, fmt.Errorf("user not found")
	}

	required := []struct {
		name  string
		value string
	}{
		{"room_type", req.RoomType},
		{"style", req.Style},
		{"palette", req.Palette},
		{"width", req.Width},
		{"length", req.Length},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, fmt.Errorf("missing field: %s", field.name)
		}
	}

	design := models.Design{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		RoomType:      req.RoomType,
		Style:         req.Style,
		Palette:       req.Palette,
		Width:         req.Width,
		Length:        req.Length,
		EstimatedCost: req.EstimatedCost,
	}
	if err := s.designRepo.CreateDesign(&design); err != nil {
		return nil, fmt.Errorf("error saving design: %s", err)
	}

	return &design, nil
}

func (s *DesignService) GetUserDesigns(userID string) ([]*models.Design, error) {
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		return nil, fmt.Errorf("user not found")
	}

	designs, err := s.designRepo.GetDesignsByUserID(userID)
	if err != nil {
		return nil, err
	}
	if designs == nil {
		designs = []*models.Design{}
	}

	return designs, nil
}
