package adminpanelauthhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	adminpaneluserstore "pv-leads-backend/lib/admin-panel/store"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"
)

type fakeUserStore struct {
	adminpaneluserstore.Provider
	user    *dbmodels.AdminPanelUser
	updated map[string]interface{}
}

func (f *fakeUserStore) FindByEmail(email string) (*dbmodels.AdminPanelUser, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	f.updated = updMap
	return nil
}

func TestLogin(t *testing.T) {
	hash, err := authutils.HashPassword("motdepasse")
	require.Nil(t, err)
	user := &dbmodels.AdminPanelUser{Email: "admin@solaire.fr", Password: hash, IsActive: true, Role: models.UserRoleSuperAdmin}
	user.ID = "user-1"
	store := &fakeUserStore{user: user}
	i := impl{store: store, secret: "secret", expireInSec: 3600}

	t.Run(`valid credentials`, func(t *testing.T) {
		resp, err := i.Login(" Admin@Solaire.fr ", "motdepasse")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, int64(3600), resp.ExpiresIn)
		require.Contains(t, store.updated, "LastLogin")
	})
	t.Run(`wrong password`, func(t *testing.T) {
		_, err := i.Login("admin@solaire.fr", "mauvais")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run(`unknown email`, func(t *testing.T) {
		_, err := i.Login("autre@solaire.fr", "motdepasse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run(`inactive user`, func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()
		_, err := i.Login("admin@solaire.fr", "motdepasse")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
