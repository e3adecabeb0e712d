// Package directory expone el listado de usuarios activos en modo solo
// lectura; nadie fuera del seeding escribe en la tabla users.
package directory

import (
	"context"

	"approval-tracker/internal/models"

	"gorm.io/gorm"
)

type Directory struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) ListActive(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := d.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&users).Error
	return users, err
}

// FindByID devuelve gorm.ErrRecordNotFound también para usuarios
// inactivos: de cara al motor no existen.
func (d *Directory) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
