package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinicore/models"
)

// ErrInvalidCredentials is returned on unknown users, wrong passwords and
// deactivated accounts alike.
var ErrInvalidCredentials = &Error{Kind: KindValidation, Message: "invalid username or password"}

// CreateUser hashes the password and inserts the login.
func (s *Store) CreateUser(user *models.User) error {
	if err := checkStruct(user); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.tx(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return duplicateErr("user", user.Username)
		}
		return tx.Create(user).Error
	})
}

// Authenticate checks a login and returns the user with the hash blanked.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.read(func(db *gorm.DB) error {
		return db.Where("username = ?", username).First(&user).Error
	})
	if isNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	user.Password = ""
	return &user, nil
}

// seedDefaultUser creates the initial admin login on a fresh datastore so
// the first start is usable.
func (s *Store) seedDefaultUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	admin := &models.User{
		Username: "admin",
		Password: "admin123",
		FullName: "Administrator",
		IsActive: true,
	}
	if err := s.CreateUser(admin); err != nil {
		return err
	}
	log.Println("seeded default admin user, change its password after first login")
	return nil
}
