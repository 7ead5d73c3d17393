package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/rownak648/storyline/internal/models"
	"gorm.io/gorm"
)

// LinkRepository defines the interface for link data operations
type LinkRepository interface {
	CreateLink(link *models.Link) error
	GetLinkByCode(code string) (*models.Link, error)
	GetLinkByID(id uuid.UUID) (*models.Link, error)
	ListLinks(limit int) ([]models.Link, error)
}

// PostgresLinkRepository implements LinkRepository for PostgreSQL
type PostgresLinkRepository struct {
	db *gorm.DB
}

// NewPostgresLinkRepository creates a new PostgresLinkRepository
func NewPostgresLinkRepository(db *gorm.DB) *PostgresLinkRepository {
	return &PostgresLinkRepository{db: db}
}

// CreateLink creates a new link. A short-code collision surfaces as
// gorm.ErrDuplicatedKey via the unique index; callers regenerate the code
// and retry.
func (r *PostgresLinkRepository) CreateLink(link *models.Link) error {
	link.ID = uuid.New()
	link.CreatedAt = time.Now()
	return r.db.Create(link).Error
}

// GetLinkByCode retrieves a link by its public short code, with its post.
func (r *PostgresLinkRepository) GetLinkByCode(code string) (*models.Link, error) {
	var link models.Link
	if err := r.db.Preload("Post").First(&link, "link_id = ?", code).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by its identifier.
func (r *PostgresLinkRepository) GetLinkByID(id uuid.UUID) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks retrieves the most recently created links, newest first.
func (r *PostgresLinkRepository) ListLinks(limit int) ([]models.Link, error) {
	var links []models.Link
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
