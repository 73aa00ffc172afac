package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waterjug/internal/config"
	"github.com/katalvlaran/waterjug/internal/logging"
)

// freeAddr reserves a loopback port and releases it for the server to bind.
func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

// serve runs ListenAndServe in the background and waits until addr accepts connections.
func serve(t *testing.T, ctx context.Context, s *Server, addr string, timeout time.Duration) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr, timeout) }()
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	return done
}

// TestListenAndServe_GracefulShutdown stops cleanly once the context is cancelled.
func TestListenAndServe_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := serve(t, ctx, New(logging.NewNop(), Options{}), freeAddr(t), 5*time.Second)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancellation")
	}
}

// TestListenAndServe_AddressInUse reports the listener failure.
func TestListenAndServe_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = New(logging.NewNop(), Options{}).ListenAndServe(context.Background(), ln.Addr().String(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}

// TestListenAndServe_ShutdownTimeout falls back to Close when a connection outlives the timeout.
func TestListenAndServe_ShutdownTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr := freeAddr(t)
	done := serve(t, ctx, New(logging.NewNop(), Options{}), addr, 50*time.Millisecond)

	// a fresh connection with an unfinished request keeps Shutdown waiting
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte("GET /healthz HTTP/1.1\r\n"))
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "graceful shutdown did not complete")
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancellation")
	}
}

// TestSolve_DefaultConfigBoundsWork rejects a huge query instead of exploring millions of states.
func TestSolve_DefaultConfigBoundsWork(t *testing.T) {
	s := New(logging.NewNop(), Options{MaxStates: config.Default().Server.MaxStates})
	rec := get(t, s.Handler(), "/solve?x=4000000&y=3999999&z=2000000")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	res := decodeResult(t, rec)
	assert.False(t, res.Solvable)
	assert.Empty(t, res.Steps)
	assert.Contains(t, res.Error, "state limit")
}

// TestNew_ZeroMaxStatesUsesDefault never leaves requests unbounded.
func TestNew_ZeroMaxStatesUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultMaxStates, New(logging.NewNop(), Options{}).opts.MaxStates)
	assert.Equal(t, DefaultMaxStates, New(logging.NewNop(), Options{MaxStates: -5}).opts.MaxStates)
	assert.Equal(t, 10, New(logging.NewNop(), Options{MaxStates: 10}).opts.MaxStates)
}

// TestSolve_OutOfRangeInput rejects capacities beyond the parser's bound.
func TestSolve_OutOfRangeInput(t *testing.T) {
	s := New(logging.NewNop(), Options{})
	rec := get(t, s.Handler(), "/solve?x=4000000000&y=5&z=4")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

// TestWriteJSON_LogsThroughServerLogger uses the injected logger and its key rewrite.
func TestWriteJSON_LogsThroughServerLogger(t *testing.T) {
	var buf bytes.Buffer
	s := New(logging.NewWithWriter(&buf, slog.LevelInfo), Options{})
	s.writeJSON(failingWriter{httptest.NewRecorder()}, http.StatusOK, map[string]int{"moves": 1})

	out := buf.String()
	assert.Contains(t, out, "response encode failed")
	assert.Contains(t, out, "err=")
	assert.Contains(t, out, "connection reset")
}
