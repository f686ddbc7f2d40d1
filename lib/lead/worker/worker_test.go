package leadworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	leadstore "pv-leads-backend/lib/lead/store"
	baseworker "pv-leads-backend/lib/utils/base-worker"
	dbmodels "pv-leads-backend/models/db"
)

type fakeLeadStore struct {
	leadstore.Provider
	list        []dbmodels.Lead
	maxAttempts int
}

func (f *fakeLeadStore) ListToNotify(maxAttempts int, createdBefore time.Time, limit int) ([]dbmodels.Lead, error) {
	f.maxAttempts = maxAttempts
	return f.list, nil
}

type fakeNotifier struct {
	ids []string
}

func (f *fakeNotifier) Notify(ctx context.Context, id string) error {
	f.ids = append(f.ids, id)
	if id == "bad" {
		return errors.New("smtp down")
	}
	return nil
}

func lead(id string) dbmodels.Lead {
	rec := dbmodels.Lead{}
	rec.ID = id
	return rec
}

func TestHandle(t *testing.T) {
	t.Run(`failed lead does not stop the batch`, func(t *testing.T) {
		store := &fakeLeadStore{list: []dbmodels.Lead{lead("bad"), lead("good")}}
		n := &fakeNotifier{}
		i := impl{BaseImpl: *baseworker.NewInstance("test", 0, time.Minute), leadStore: store, notifier: n}
		i.handle(context.Background())
		require.Equal(t, []string{"bad", "good"}, n.ids)
		require.Equal(t, 5, store.maxAttempts)
	})
	t.Run(`stops on cancelled context`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n := &fakeNotifier{}
		i := impl{BaseImpl: *baseworker.NewInstance("test", 0, time.Minute), leadStore: &fakeLeadStore{list: []dbmodels.Lead{lead("a")}}, notifier: n}
		i.handle(ctx)
		require.Empty(t, n.ids)
	})
}
