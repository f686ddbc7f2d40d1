package yagptclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

var ErrEmptyAnswer = errors.New("réponse YandexGPT vide")

// Provider drafts text from system instructions and a user request.
type Provider interface {
	Complete(ctx context.Context, instructions, text string) (string, error)
}

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) Provider {
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

func (i impl) Complete(ctx context.Context, instructions, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("texte de la requête vide")
	}
	response, err := i.client.CreateRequest(ctx, newRequest(i.catalogID, instructions, text))
	if err != nil {
		return "", errors.Wrap(err, "erreur lors de l'appel à l'API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", ErrEmptyAnswer
	}
	answer := strings.TrimSpace(response.Result.Alternatives[0].Message.Text)
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return stripCodeFence(answer), nil
}

// newRequest keeps a low temperature, drafts are reviewed before publication.
func newRequest(catalogID, instructions, text string) yandexgptclient.YandexGPTRequest {
	messages := make([]yandexgptclient.YandexGPTMessage, 0, 2)
	if instructions != "" {
		messages = append(messages, yandexgptclient.YandexGPTMessage{
			Role: yandexgptclient.YandexGPTMessageRoleSystem,
			Text: instructions,
		})
	}
	messages = append(messages, yandexgptclient.YandexGPTMessage{
		Role: yandexgptclient.YandexGPTMessageRoleUser,
		Text: text,
	})
	return yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.4,
			MaxTokens:   2000,
		},
		Messages: messages,
	}
}

// stripCodeFence removes the ```html fence the model sometimes wraps its answer in.
func stripCodeFence(answer string) string {
	if !strings.HasPrefix(answer, "```") {
		return answer
	}
	answer = strings.TrimPrefix(answer, "```")
	if nl := strings.Index(answer, "\n"); nl >= 0 {
		answer = answer[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(answer), "```"))
}
