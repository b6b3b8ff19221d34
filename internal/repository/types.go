package repository

import "gorm.io/gorm"

type QueryOption func(*gorm.DB) *gorm.DB

func WithPreload(association string, conds ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, conds...)
	}
}

func applyOptions(db *gorm.DB, opts []QueryOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}
