package database

import "staybook/server/internal/models"

func (d *Database) CreateUser(u *models.User) error {
	err := d.db.Create(u).Error
	if isUniqueViolation(err) {
		return models.NewValidationError("duplicate_username", "username is already taken")
	}
	return err
}

func (d *Database) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := d.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	err := d.db.Order("created_at DESC").Find(&users).Error
	return users, err
}
