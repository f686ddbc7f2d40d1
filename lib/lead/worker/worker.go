package leadworker

import (
	"context"
	"time"

	"pv-leads-backend/db"
	leadhandler "pv-leads-backend/lib/lead"
	leadstore "pv-leads-backend/lib/lead/store"
	baseworker "pv-leads-backend/lib/utils/base-worker"
)

const (
	notifyBatchSize = 50
	notifyGrace     = time.Minute
)

func StartWorker(ctx context.Context, interval time.Duration) {
	i := &impl{
		BaseImpl:  *baseworker.NewInstance("LeadNotifyWorker", 30*time.Second, interval),
		leadStore: leadstore.NewInstance(db.DB),
		notifier:  leadhandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type notifier interface {
	Notify(ctx context.Context, id string) error
}

type impl struct {
	baseworker.BaseImpl
	leadStore leadstore.Provider
	notifier  notifier
}

// handle retries leads whose notification failed, the grace period leaves
// the first attempt made on creation time to finish.
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.leadStore.ListToNotify(leadhandler.MaxNotifyAttempt, time.Now().Add(-notifyGrace), notifyBatchSize)
	if err != nil {
		logger.WithError(err).Error("erreur de récupération des demandes à notifier")
		return
	}
	for _, lead := range list {
		if ctx.Err() != nil {
			break
		}
		if err = i.notifier.Notify(ctx, lead.ID); err != nil {
			logger.
				WithError(err).
				WithField("lead_id", lead.ID).
				WithField("attempt", lead.NotifyAttempt+1).
				Warn("nouvel essai de notification échoué")
		}
	}
}
