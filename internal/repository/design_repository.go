package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"interioai-backend/internal/models"
)

type IDesignRepository interface {
	CreateDesign(design *models.Design) error
	GetDesignsByUserID(userID string) ([]*models.Design, error)
	CountDesignsByUserID(userID string) (int, error)
}

type DesignRepository struct {
	db *sqlx.DB
}

func NewDesignRepository(db *sqlx.DB) IDesignRepository {
	return &DesignRepository{
		db: db,
	}
}

func (r *DesignRepository) CreateDesign(design *models.Design) error {
	query := `
		INSERT INTO designs (id, user_id, room_type, style, palette, width, length, estimated_cost, created_at)
		VALUES (:id, :user_id, :room_type, :style, :palette, :width, :length, :estimated_cost, :created_at)
	`

	design.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExec(query, design)
	if err != nil {
		return fmt.Errorf("failed to create design: %w", err)
	}

	return nil
}

// GetDesignsByUserID lists a user's designs, most recent first.
func (r *DesignRepository) GetDesignsByUserID(userID string) ([]*models.Design, error) {
	var designs []*models.Design
	query := `
		SELECT id, user_id, room_type, style, palette, width, length, estimated_cost, created_at
		FROM designs WHERE user_id = $1 ORDER BY created_at DESC
	`

	err := r.db.Select(&designs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get designs: %w", err)
	}

	return designs, nil
}

func (r *DesignRepository) CountDesignsByUserID(userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM designs WHERE user_id = $1`

	err := r.db.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count designs: %w", err)
	}

	return count, nil
}
