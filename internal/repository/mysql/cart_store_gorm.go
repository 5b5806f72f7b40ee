package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

// CartRecord is the single-row key-value shape the cart is persisted in.
type CartRecord struct {
	StorageKey string    `gorm:"primaryKey;type:varchar(64)"`
	Payload    string    `gorm:"type:longtext;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CartRecord) TableName() string {
	return "cart_records"
}

type cartStore struct {
	db  *gorm.DB
	key string
}

// NewCartStore migrates the cart_records table and returns a store bound to key.
func NewCartStore(db *gorm.DB, key string) (repository.CartStore, error) {
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		return nil, err
	}
	return &cartStore{db: db, key: key}, nil
}

func (s *cartStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	var rec CartRecord
	err := s.db.WithContext(ctx).First(&rec, "storage_key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(rec.Payload), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *cartStore) Save(ctx context.Context, lines []domain.CartLine) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	rec := CartRecord{StorageKey: s.key, Payload: string(b), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
}

func (s *cartStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&CartRecord{}, "storage_key = ?", s.key).Error
}
