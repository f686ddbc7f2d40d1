package indexingapimodels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitRequestValidate(t *testing.T) {
	t.Run(`absolute urls`, func(t *testing.T) {
		require.Nil(t, SubmitRequest{URLs: []string{"https://solaire.fr/photovoltaique/lyon-69001", "http://localhost:3000/"}}.Validate())
	})
	t.Run(`empty list`, func(t *testing.T) {
		require.NotNil(t, SubmitRequest{}.Validate())
		require.NotNil(t, SubmitRequest{URLs: []string{"", "  "}}.Validate())
	})
	t.Run(`relative or foreign scheme`, func(t *testing.T) {
		require.NotNil(t, SubmitRequest{URLs: []string{"/photovoltaique/lyon-69001"}}.Validate())
		require.NotNil(t, SubmitRequest{URLs: []string{"ftp://solaire.fr/fichier"}}.Validate())
	})
	t.Run(`too many urls`, func(t *testing.T) {
		urls := strings.Split(strings.Repeat("https://solaire.fr,", MaxSubmitURLs+1), ",")
		require.NotNil(t, SubmitRequest{URLs: urls[:MaxSubmitURLs+1]}.Validate())
	})
}
