package adminpanelapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"
)

const passwordMinLength = 8

type UserView struct {
	User
	ID        string     `json:"id"`
	IsActive  bool       `json:"is_active"`
	RoleName  string     `json:"role_name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type User struct {
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Password    string          `json:"password,omitempty"`
	Role        models.UserRole `json:"role"`
}

func (u User) Validate() error {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return errors.New("format de l'email invalide")
	}
	if len(u.Password) < passwordMinLength {
		return errors.Errorf("le mot de passe doit contenir au moins %v caractères", passwordMinLength)
	}
	if !u.Role.IsValid() {
		return errors.New("rôle invalide")
	}
	return nil
}

func UserConvert(rec dbmodels.AdminPanelUser) UserView {
	result := UserView{
		User: User{
			Email:       rec.Email,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			PhoneNumber: rec.PhoneNumber,
			Role:        rec.Role,
		},
		ID:        rec.ID,
		IsActive:  rec.IsActive,
		RoleName:  rec.Role.ToHuman(),
		LastLogin: rec.LastLogin,
	}
	return result
}

type UserUpdate struct {
	Email       *string          `json:"email"`
	FirstName   *string          `json:"first_name"`
	LastName    *string          `json:"last_name"`
	PhoneNumber *string          `json:"phone_number"`
	Password    *string          `json:"password"`
	Role        *models.UserRole `json:"role"`
	IsActive    *bool            `json:"is_active"`
}

func (u UserUpdate) Validate() error {
	if u.Email != nil {
		if _, err := mail.ParseAddress(*u.Email); err != nil {
			return errors.New("format de l'email invalide")
		}
	}
	if u.Password != nil && len(*u.Password) < passwordMinLength {
		return errors.Errorf("le mot de passe doit contenir au moins %v caractères", passwordMinLength)
	}
	if u.Role != nil && !u.Role.IsValid() {
		return errors.New("rôle invalide")
	}
	return nil
}
