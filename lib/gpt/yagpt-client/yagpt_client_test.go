package yagptclient

import (
	"testing"

	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run(`system and user messages`, func(t *testing.T) {
		request := newRequest("catalog", "Tu es rédacteur web", "Rédige une page sur les aides")
		require.Len(t, request.Messages, 2)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleSystem, request.Messages[0].Role)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleUser, request.Messages[1].Role)
		require.Equal(t, "Rédige une page sur les aides", request.Messages[1].Text)
		require.Contains(t, request.ModelURI, "catalog")
	})
	t.Run(`no instructions`, func(t *testing.T) {
		request := newRequest("catalog", "", "Rédige une page")
		require.Len(t, request.Messages, 1)
		require.Equal(t, yandexgptclient.YandexGPTMessageRoleUser, request.Messages[0].Role)
	})
}

func TestStripCodeFence(t *testing.T) {
	require.Equal(t, "<h2>Aides</h2>", stripCodeFence("```html\n<h2>Aides</h2>\n```"))
	require.Equal(t, "<h2>Aides</h2>", stripCodeFence("<h2>Aides</h2>"))
}
