package connectionhub

import (
	"sync"

	log "github.com/sirupsen/logrus"
	wsmodels "pv-leads-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn wsConn)
	DeleteClient(userID string, conn wsConn)
	Broadcast(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = newHub()
}

func newHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession // map[userID]
}

// DeleteClient removes the session of conn. A session opened since by a newer
// connection of the same user is left in place.
func (i *impl) DeleteClient(userID string, conn wsConn) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	ok = ok && sess.conn == conn
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

// AddClient keeps one session per user, a new connection replaces the previous one.
func (i *impl) AddClient(userID string, conn wsConn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	log.WithField("user_id", userID).Debug("client websocket connecté")
}

// Broadcast never blocks: a session with a full buffer misses the message.
func (i *impl) Broadcast(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for userID, sess := range i.clients {
		select {
		case sess.sendCh <- msg:
		default:
			log.WithField("user_id", userID).Warn("file d'envoi websocket pleine, message ignoré")
		}
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.clients[userID]
	return ok
}
