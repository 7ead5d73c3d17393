package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/rownak648/storyline/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Posts are
// immutable after creation; there is no update.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uuid.UUID) (*models.Post, error)
	DeletePost(id uuid.UUID) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post by ID. The link referencing it is removed by the
// store's cascade rule.
func (r *PostgresPostRepository) DeletePost(id uuid.UUID) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
