package connectionhub

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	wsmodels "pv-leads-backend/models/ws"
)

type fakeConn struct {
	mu     sync.Mutex
	sent   []interface{}
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, v)
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestHub(t *testing.T) {
	t.Run(`broadcast reaches every client`, func(t *testing.T) {
		hub := newHub()
		first, second := &fakeConn{}, &fakeConn{}
		hub.AddClient("u1", first)
		hub.AddClient("u2", second)

		hub.Broadcast(wsmodels.ServerMessage{Code: wsmodels.CodeLeadCreated})
		require.Eventually(t, func() bool { return first.count() == 1 && second.count() == 1 }, time.Second, 10*time.Millisecond)
	})
	t.Run(`new connection replaces the previous one`, func(t *testing.T) {
		hub := newHub()
		old, current := &fakeConn{}, &fakeConn{}
		hub.AddClient("u1", old)
		hub.AddClient("u1", current)
		require.Eventually(t, old.isClosed, time.Second, 10*time.Millisecond)

		hub.Broadcast(wsmodels.ServerMessage{Code: wsmodels.CodeLeadCreated})
		require.Eventually(t, func() bool { return current.count() == 1 }, time.Second, 10*time.Millisecond)
		require.Equal(t, 0, old.count())
	})
	t.Run(`delete`, func(t *testing.T) {
		hub := newHub()
		conn := &fakeConn{}
		hub.AddClient("u1", conn)
		require.True(t, hub.IsConnected("u1"))

		hub.DeleteClient("u1", conn)
		require.False(t, hub.IsConnected("u1"))
		hub.DeleteClient("u1", conn)
		hub.Broadcast(wsmodels.ServerMessage{Code: wsmodels.CodeLeadCreated})
		require.Never(t, func() bool { return conn.count() > 0 }, 50*time.Millisecond, 10*time.Millisecond)
	})
	t.Run(`old connection leaving keeps the newer session`, func(t *testing.T) {
		hub := newHub()
		old, current := &fakeConn{}, &fakeConn{}
		hub.AddClient("u1", old)
		hub.AddClient("u1", current)
		hub.DeleteClient("u1", old)
		require.True(t, hub.IsConnected("u1"))

		hub.Broadcast(wsmodels.ServerMessage{Code: wsmodels.CodeLeadCreated})
		require.Eventually(t, func() bool { return current.count() == 1 }, time.Second, 10*time.Millisecond)
		require.False(t, current.isClosed())
	})
}
