package client

import (
	"context"
	"net/http"

	"github.com/giantswarm/oauthrest/pkg/endpoint"
)

// Future is the pending outcome of a request started with Start or
// StartTokenExchange. It completes exactly once.
type Future struct {
	done    chan struct{}
	cancel  context.CancelFunc
	payload Payload
	err     error
}

func startFuture(cancel context.CancelFunc, fn func() (Payload, error)) *Future {
	f := &Future{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer cancel()
		f.payload, f.err = fn()
		close(f.done)
	}()
	return f
}

// Done is closed once the outcome is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until completion and returns the outcome. Every call returns
// the same outcome.
func (f *Future) Wait() (Payload, error) {
	<-f.done
	return f.payload, f.err
}

// Then calls fn with the outcome once the request completes. fn runs on its
// own goroutine.
func (f *Future) Then(fn func(Payload, error)) {
	go func() {
		fn(f.Wait())
	}()
}

// Abort cancels the in-flight request. The future then completes with the
// transport's cancellation error. Aborting a completed future does nothing.
func (f *Future) Abort() {
	f.cancel()
}

// Start begins a resource request in the background. Preconditions are
// checked before Start returns: without an access token it returns
// ErrMissingCredential and no request is made.
func (c *Client) Start(ctx context.Context, method, path string, params endpoint.Params) (*Future, error) {
	ctx, cancel := context.WithCancel(ctx)
	req, err := c.newResourceRequest(ctx, method, path, params)
	if err != nil {
		cancel()
		return nil, err
	}
	return startFuture(cancel, func() (Payload, error) {
		return c.send(req, endpoint.API, path)
	}), nil
}

// StartGet begins a GET in the background.
func (c *Client) StartGet(ctx context.Context, path string, params endpoint.Params) (*Future, error) {
	return c.Start(ctx, http.MethodGet, path, params)
}

// StartTokenExchange begins a token exchange in the background.
func (c *Client) StartTokenExchange(ctx context.Context, code string) (*Future, error) {
	ctx, cancel := context.WithCancel(ctx)
	req, err := c.newTokenRequest(ctx, code)
	if err != nil {
		cancel()
		return nil, err
	}
	return startFuture(cancel, func() (Payload, error) {
		return c.exchange(req)
	}), nil
}
