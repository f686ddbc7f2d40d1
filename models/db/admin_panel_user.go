package dbmodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"pv-leads-backend/models"
)

// AdminPanelUser is an operator of the back office. Password holds a bcrypt hash.
type AdminPanelUser struct {
	BaseModel
	IsActive    bool
	Role        models.UserRole `gorm:"type:varchar(32)"`
	Password    string          `gorm:"type:varchar(128)"`
	FirstName   string          `gorm:"type:varchar(150)"`
	LastName    string          `gorm:"type:varchar(150)"`
	Email       string          `gorm:"uniqueIndex;type:varchar(255)"`
	PhoneNumber string          `gorm:"type:varchar(20)"`
	LastLogin   *time.Time
}

func (u AdminPanelUser) Validate() error {
	if u.Email == "" {
		return errors.New("email non renseigné")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return errors.New("email invalide")
	}
	if u.Role != models.UserRoleAdmin && u.Role != models.UserRoleSuperAdmin {
		return errors.Errorf("rôle inconnu: %v", u.Role)
	}
	return nil
}

func (u AdminPanelUser) IsSuperAdmin() bool {
	return u.Role == models.UserRoleSuperAdmin
}

func (u AdminPanelUser) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
