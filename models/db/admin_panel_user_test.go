package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pv-leads-backend/models"
)

func TestAdminPanelUserValidate(t *testing.T) {
	t.Run(`valid`, func(t *testing.T) {
		u := AdminPanelUser{Email: "admin@example.fr", Role: models.UserRoleAdmin}
		require.Nil(t, u.Validate())
	})
	t.Run(`email`, func(t *testing.T) {
		require.NotNil(t, AdminPanelUser{Role: models.UserRoleAdmin}.Validate())
		require.NotNil(t, AdminPanelUser{Email: "admin", Role: models.UserRoleAdmin}.Validate())
	})
	t.Run(`role`, func(t *testing.T) {
		require.NotNil(t, AdminPanelUser{Email: "admin@example.fr", Role: "ROOT"}.Validate())
	})
	t.Run(`full name`, func(t *testing.T) {
		require.Equal(t, "Jeanne Martin", AdminPanelUser{FirstName: "Jeanne", LastName: "Martin"}.FullName())
		require.Equal(t, "Jeanne", AdminPanelUser{FirstName: "Jeanne"}.FullName())
	})
}
