package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk/config"
	"github.com/salesdesk/salesdesk/internal/app"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

// fakeApp overrides the lifecycle methods runServer calls
type fakeApp struct {
	app.AppInterface

	initErr     error
	startErr    error
	shutdownErr error

	stopped  chan struct{}
	shutdown bool
	timeout  time.Duration
}

func newFakeApp() *fakeApp {
	return &fakeApp{stopped: make(chan struct{})}
}

func (f *fakeApp) Initialize() error { return f.initErr }

func (f *fakeApp) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeApp) Shutdown(context.Context) error {
	f.shutdown = true
	close(f.stopped)
	return f.shutdownErr
}

func (f *fakeApp) SetShutdownTimeout(timeout time.Duration) { f.timeout = timeout }

func (f *fakeApp) GetActiveRequestCount() int64 { return 0 }

func factory(f *fakeApp) NewAppFunc {
	return func(*config.Config, ...app.AppOption) app.AppInterface { return f }
}

// stubSignals delivers sig on the first registered channel only
func stubSignals(t *testing.T, sig os.Signal) {
	original := signalNotify
	t.Cleanup(func() { signalNotify = original })

	calls := 0
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) {
		calls++
		if calls == 1 && sig != nil {
			c <- sig
		}
	}
}

func TestRunServer_InitializeFails(t *testing.T) {
	fake := newFakeApp()
	fake.initErr = errors.New("failed to ping database")

	err := runServer(&config.Config{}, logger.NewMockLogger(t), factory(fake))

	assert.EqualError(t, err, "failed to ping database")
}

func TestRunServer_ServerError(t *testing.T) {
	stubSignals(t, nil)
	fake := newFakeApp()
	fake.startErr = errors.New("listen tcp :8080: bind: address already in use")

	err := runServer(&config.Config{}, logger.NewMockLogger(t), factory(fake))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	stubSignals(t, syscall.SIGTERM)
	fake := newFakeApp()

	err := runServer(&config.Config{}, logger.NewMockLogger(t), factory(fake))

	require.NoError(t, err)
	assert.True(t, fake.shutdown)
	assert.Equal(t, 25*time.Second, fake.timeout)
}

func TestRunServer_ShutdownError(t *testing.T) {
	stubSignals(t, syscall.SIGTERM)
	fake := newFakeApp()
	fake.shutdownErr = errors.New("shutdown timeout exceeded")

	err := runServer(&config.Config{}, logger.NewMockLogger(t), factory(fake))

	assert.EqualError(t, err, "shutdown timeout exceeded")
}
