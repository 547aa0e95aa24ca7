package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/server/middleware"
	"github.com/iudanet/pagekeeper/internal/wire"
)

const validFrame = `{"type":"content-update","page":"index","timestamp":1000,"changes":{"hero-title":"New Title"}}`

func setupBusServer(t *testing.T, frameRate int) (*BusHandler, string) {
	t.Helper()

	codec, err := wire.NewCodec()
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(frameRate, time.Minute)
	handler := NewBusHandler(codec, limiter, testLogger())

	r := chi.NewRouter()
	r.Get("/bus/{channel}", handler.Serve)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		handler.Close()
		srv.Close()
		limiter.Stop()
	})

	return handler, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialPeer(t *testing.T, base, channel string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(base+"/bus/"+channel, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn, timeout time.Duration) (string, error) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))
	_, data, err := conn.ReadMessage()
	return string(data), err
}

func TestBusHandler_FanOut(t *testing.T) {
	handler, base := setupBusServer(t, 100)

	a := dialPeer(t, base, "sms-content-sync")
	b := dialPeer(t, base, "sms-content-sync")
	c := dialPeer(t, base, "sms-content-sync")
	other := dialPeer(t, base, "another")

	require.Eventually(t, func() bool { return handler.Peers() == 4 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(validFrame)))

	for _, conn := range []*websocket.Conn{b, c} {
		got, err := readFrame(t, conn, 2*time.Second)
		require.NoError(t, err)
		assert.JSONEq(t, validFrame, got)
	}

	// отправитель и другой канал ничего не получают
	_, err := readFrame(t, a, 100*time.Millisecond)
	assert.Error(t, err)
	_, err = readFrame(t, other, 100*time.Millisecond)
	assert.Error(t, err)
}

func TestBusHandler_DropsInvalidFrames(t *testing.T) {
	handler, base := setupBusServer(t, 100)

	a := dialPeer(t, base, "ch")
	b := dialPeer(t, base, "ch")
	require.Eventually(t, func() bool { return handler.Peers() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"content-update","page":"../etc","timestamp":1}`)))
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(validFrame)))

	got, err := readFrame(t, b, 2*time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, validFrame, got, "only the valid frame is relayed")
}

func TestBusHandler_FrameRateLimit(t *testing.T) {
	handler, base := setupBusServer(t, 2)

	a := dialPeer(t, base, "ch")
	b := dialPeer(t, base, "ch")
	require.Eventually(t, func() bool { return handler.Peers() == 2 }, 2*time.Second, 10*time.Millisecond)

	for i := 0; i < 4; i++ {
		require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(validFrame)))
	}

	for i := 0; i < 2; i++ {
		_, err := readFrame(t, b, 2*time.Second)
		require.NoError(t, err)
	}
	_, err := readFrame(t, b, 150*time.Millisecond)
	assert.Error(t, err, "frames over the limit are dropped")
}

func TestBusHandler_PeerLeaves(t *testing.T) {
	handler, base := setupBusServer(t, 100)

	a := dialPeer(t, base, "ch")
	_ = dialPeer(t, base, "ch")
	require.Eventually(t, func() bool { return handler.Peers() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = a.Close()

	require.Eventually(t, func() bool { return handler.Peers() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestBusHandler_InvalidChannel(t *testing.T) {
	_, base := setupBusServer(t, 100)

	_, resp, err := websocket.DefaultDialer.Dial(base+"/bus/bad.channel", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
