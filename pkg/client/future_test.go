package client

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	t.Run("completes once with the outcome", func(t *testing.T) {
		doer := &stubDoer{status: http.StatusOK, body: `{"a":1}`}
		c := New(Config{AccessToken: "tok"}, WithHTTPClient(doer))

		f, err := c.StartGet(context.Background(), "athlete", nil)
		require.NoError(t, err)

		select {
		case <-f.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("future did not complete")
		}

		p1, err1 := f.Wait()
		p2, err2 := f.Wait()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, p1.Value(), p2.Value())
		assert.Equal(t, int32(1), doer.calls.Load())
	})

	t.Run("then receives the outcome", func(t *testing.T) {
		doer := &stubDoer{status: http.StatusNotFound, body: `{"message":"Record Not Found"}`}
		c := New(Config{AccessToken: "tok"}, WithHTTPClient(doer))

		f, err := c.Start(context.Background(), http.MethodDelete, "activities/9", nil)
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		var gotErr error
		var gotPayload Payload
		f.Then(func(p Payload, err error) {
			gotPayload, gotErr = p, err
			wg.Done()
		})
		wg.Wait()

		status, ok := StatusCode(gotErr)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, status)
		assert.True(t, gotPayload.OK())
	})

	t.Run("abort cancels the request", func(t *testing.T) {
		release := make(chan struct{})
		_, bases := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		})
		defer close(release)

		c := New(Config{AccessToken: "tok"}, WithBases(bases))
		f, err := c.StartGet(context.Background(), "slow", nil)
		require.NoError(t, err)

		f.Abort()

		select {
		case <-f.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("aborted future did not complete")
		}
		_, err = f.Wait()
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("token read at call time", func(t *testing.T) {
		gotAuth := make(chan string, 1)
		release := make(chan struct{})
		_, bases := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth <- r.Header.Get("Authorization")
			<-release
			_, _ = io.WriteString(w, `{}`)
		})

		c := New(Config{AccessToken: "first"}, WithBases(bases))
		f, err := c.StartGet(context.Background(), "athlete", nil)
		require.NoError(t, err)

		c.SetCredential(CredentialAccessToken, "second")
		close(release)

		_, err = f.Wait()
		require.NoError(t, err)
		assert.Equal(t, "Bearer first", <-gotAuth)
	})
}

func TestStartTokenExchange(t *testing.T) {
	doer := &stubDoer{status: http.StatusOK, body: `{"access_token":"tok"}`}
	c := New(Config{ClientID: "1", ClientSecret: "s"}, WithHTTPClient(doer))

	_, err := c.StartTokenExchange(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	f, err := c.StartTokenExchange(context.Background(), "code123")
	require.NoError(t, err)

	_, err = f.Wait()
	require.NoError(t, err)
	assert.Equal(t, HasToken, c.State())
}
