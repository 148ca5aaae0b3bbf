package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

// CreateWithProfile inserts the user row and its role profile in one
// transaction. Exactly one of customer/professional may be non-nil; a failure
// on either insert rolls back both.
func (r *UserRepository) CreateWithProfile(ctx context.Context, u *domain.User, customer *domain.Customer, professional *domain.Professional) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if customer != nil {
			customer.UserID = u.ID
			if err := tx.Create(customer).Error; err != nil {
				return err
			}
		}
		if professional != nil {
			professional.UserID = u.ID
			if err := tx.Create(professional).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByAPIKey(ctx context.Context, key string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("api_key = ?", key).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// ExistsByUsername reports a username collision, ignoring excludeID so profile
// updates do not collide with the caller's own row.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? AND id <> ?", strings.TrimSpace(username), excludeID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ? AND id <> ?", strings.TrimSpace(email), excludeID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// ListWithoutAPIKey returns users that have never been issued an API key.
func (r *UserRepository) ListWithoutAPIKey(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).Where("api_key IS NULL").Order("id").Find(&users)
	return users, tx.Error
}

func (r *UserRepository) SetAPIKey(ctx context.Context, userID int64, key string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("api_key", key).Error
}
