package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	citypage "pv-leads-backend/lib/city-page"
	apimodels "pv-leads-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("erreur de lecture de la requête")
		return errors.New("impossible de lire les données de la requête")
	}
	return nil
}

// GetID reads the ":id" path param and checks it is a uuid.
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetUUIDParam(ctx, "id")
}

func (c *BaseAPIController) GetUUIDParam(ctx *fiber.Ctx, name string) (string, error) {
	value := ctx.Params(name)
	if value == "" {
		return "", errors.Errorf("paramètre %s non renseigné", name)
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", errors.Errorf("paramètre %s invalide", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("requestid").(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError logs err and answers 500 with a generic message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func (c *BaseAPIController) SendNotFound(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

// FlushPageCache drops the rendered public pages after an admin edit.
func (c *BaseAPIController) FlushPageCache() {
	if citypage.Instance != nil {
		citypage.Instance.Flush()
	}
}
