package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/flashnote-app/flashnote/internal/utils"
	"gorm.io/gorm"
)

// DocumentRepository owns document records, slug generation and
// edit-token issuance. A requester id of 0 means anonymous.
type DocumentRepository interface {
	Create(ctx context.Context, ownerID uint, content string) (*models.Document, error)
	FindBySlug(ctx context.Context, slug string) (*models.Document, error)
	UpdateContent(ctx context.Context, slug, content string, requesterID uint, editToken string) (*models.Document, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.DocumentSummary, error)
	EnsureEditToken(ctx context.Context, slug string, requesterID uint) (*models.Document, error)
	DeleteBySlug(ctx context.Context, slug string, requesterID uint) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a DocumentRepository backed by db.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, ownerID uint, content string) (*models.Document, error) {
	slug, err := utils.GenerateID(models.SlugLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}

	// The unique index backstops slug collisions; a collision fails
	// the insert rather than being retried.
	doc := models.Document{
		Slug:    slug,
		Content: content,
		OwnerID: ownerID,
	}
	if err := r.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return &doc, nil
}

func (r *documentRepository) FindBySlug(ctx context.Context, slug string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document %q: %w", slug, err)
	}
	return &doc, nil
}

// UpdateContent overwrites the document body. Allowed for the owner or
// any caller presenting the stored edit token. Last write wins; there
// is no conflict detection between concurrent writers.
func (r *documentRepository) UpdateContent(ctx context.Context, slug, content string, requesterID uint, editToken string) (*models.Document, error) {
	doc, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	isOwner := requesterID != 0 && requesterID == doc.OwnerID
	hasToken := doc.EditToken != nil && editToken != "" && *doc.EditToken == editToken
	if !isOwner && !hasToken {
		return nil, models.ErrForbidden
	}

	doc.Content = content
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to update document %q: %w", slug, err)
	}
	return doc, nil
}

func (r *documentRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.DocumentSummary, error) {
	var docs []models.DocumentSummary
	err := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Select("slug", "updated_at").
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for user %d: %w", ownerID, err)
	}
	return docs, nil
}

// EnsureEditToken returns the document's edit token, generating and
// persisting one on first call. Owner only. Repeat calls return the
// same token; it is never rotated here.
func (r *documentRepository) EnsureEditToken(ctx context.Context, slug string, requesterID uint) (*models.Document, error) {
	doc, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != requesterID {
		return nil, models.ErrForbidden
	}

	if doc.EditToken == nil {
		token, err := utils.GenerateID(models.EditTokenLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate edit token: %w", err)
		}
		doc.EditToken = &token
		if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
			return nil, fmt.Errorf("failed to store edit token for %q: %w", slug, err)
		}
	}
	return doc, nil
}

func (r *documentRepository) DeleteBySlug(ctx context.Context, slug string, requesterID uint) error {
	doc, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if doc.OwnerID != requesterID {
		return models.ErrForbidden
	}
	if err := r.db.WithContext(ctx).Delete(doc).Error; err != nil {
		return fmt.Errorf("failed to delete document %q: %w", slug, err)
	}
	return nil
}
