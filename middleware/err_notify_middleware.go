package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotifyPayload struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify posts every 5xx response to addr, the request is not delayed.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}
		var data struct {
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			data.Message = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload := errNotifyPayload{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  data.Message,
		}
		go sendErrNotify(addr, payload)
		return err
	}
}

func sendErrNotify(addr string, payload errNotifyPayload) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	resp, err := http.Post(addr, "application/json", bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("erreur d'envoi de la notification d'erreur")
		return
	}
	_ = resp.Body.Close()
}
