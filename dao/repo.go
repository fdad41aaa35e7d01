package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用的单表操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.Db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}
