package sitemapworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"pv-leads-backend/lib/sitemap"
	baseworker "pv-leads-backend/lib/utils/base-worker"
)

type fakeSitemap struct {
	sitemap.Provider
	err error
}

func (f fakeSitemap) Sitemap() ([]byte, error) {
	return []byte("<urlset/>"), f.err
}

func (f fakeSitemap) Robots() string {
	return "User-Agent: *"
}

type fakeStorage struct {
	objects map[string]string
}

func (f *fakeStorage) MakeBucket(ctx context.Context) error { return nil }

func (f *fakeStorage) PutObject(ctx context.Context, objectName, contentType string, body []byte) error {
	f.objects[objectName] = contentType + ":" + string(body)
	return nil
}

func TestHandle(t *testing.T) {
	t.Run(`publishes sitemap and robots`, func(t *testing.T) {
		storage := &fakeStorage{objects: map[string]string{}}
		i := impl{BaseImpl: *baseworker.NewInstance("test", 0, time.Hour), sitemap: fakeSitemap{}, storage: storage}
		i.handle(context.Background())
		require.Equal(t, "application/xml:<urlset/>", storage.objects["sitemap.xml"])
		require.Equal(t, "text/plain:User-Agent: *", storage.objects["robots.txt"])
	})
	t.Run(`nothing uploaded on failure`, func(t *testing.T) {
		storage := &fakeStorage{objects: map[string]string{}}
		i := impl{BaseImpl: *baseworker.NewInstance("test", 0, time.Hour), sitemap: fakeSitemap{err: errors.New("xml")}, storage: storage}
		i.handle(context.Background())
		require.Empty(t, storage.objects)
	})
}
