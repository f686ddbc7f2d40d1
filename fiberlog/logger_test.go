package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagStatus, TagMethod, TagPath, "unknown"}}))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/ko", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) })

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
	require.Nil(t, err)
	entry := hook.LastEntry()
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, 200, entry.Data[TagStatus])
	require.Equal(t, "GET", entry.Data[TagMethod])
	require.Equal(t, "/ok", entry.Data[TagPath])
	require.NotContains(t, entry.Data, "unknown")

	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ko", nil))
	require.Nil(t, err)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestSkipPaths(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagPath}, SkipPaths: []string{"/ws"}}))
	app.Get("/ws/feed", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/cities", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ws/feed", nil))
	require.Nil(t, err)
	require.Empty(t, hook.AllEntries())

	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/cities", nil))
	require.Nil(t, err)
	require.Equal(t, "/cities", hook.LastEntry().Data[TagPath])
}
