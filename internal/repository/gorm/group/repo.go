package groupgorm

import (
	"context"
	"errors"

	"github.com/oggyb/sms-dispatch/internal/db"
	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the group.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a group repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Save inserts a new group record into the database.
func (r *Repository) Save(ctx context.Context, g *group.Group) error {
	err := r.db.WithContext(ctx).Create(fromDomain(g)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return group.ErrAlreadyExists
	}
	return err
}

// GetByName loads a single group by its unique name.
func (r *Repository) GetByName(ctx context.Context, name string) (*group.Group, error) {
	var m GroupModel

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&m).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, group.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomain(&m), nil
}

// List returns every group ordered by name.
func (r *Repository) List(ctx context.Context) ([]*group.Group, error) {
	var models []GroupModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	return toDomainMany(models), nil
}

// Delete removes a group by name.
func (r *Repository) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&GroupModel{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return group.ErrNotFound
	}
	return nil
}

// compile-time interface check
var _ group.Repository = (*Repository)(nil)
