package guestbook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommentsShapes(t *testing.T) {
	bare := `[{"id":"a","name":"Ann","mood":90,"timestamp":1700000000000,"comment":"hi"}]`
	comments, err := DecodeComments([]byte(bare))
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ann", comments[0].Name)
	assert.Equal(t, 90.0, comments[0].Mood)
	assert.Equal(t, int64(1700000000000), comments[0].Timestamp)
	assert.Equal(t, "hi", comments[0].Text)

	wrapped := `{"comments":[{"name":"Bo","mood":20},{"mood":70}]}`
	comments, err = DecodeComments([]byte(wrapped))
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	comments, err = DecodeComments([]byte(`{"comments":null}`))
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = DecodeComments([]byte(`<html>oops</html>`))
	assert.Error(t, err)

	_, err = DecodeComments(nil)
	assert.Error(t, err)
}

func TestHTTPSourceComments(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		gotQuery = r.URL.Query().Get("max-comments")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"comments":[{"name":"Ann","mood":90,"timestamp":1700000000000,"comment":"hi"}]}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/", time.Second)
	comments, err := src.Comments(context.Background(), Limit(3))
	require.NoError(t, err)
	assert.Equal(t, "3", gotQuery)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ann", comments[0].Name)

	_, err = src.Comments(context.Background(), All())
	require.NoError(t, err)
	assert.Equal(t, "all", gotQuery)
}

func TestHTTPSourceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, time.Second)
	_, err := src.Comments(context.Background(), All())
	assert.ErrorContains(t, err, "status 500")

	err = src.DeleteAll(context.Background())
	assert.ErrorContains(t, err, "status 500")
}

func TestHTTPSourceDeleteAll(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewHTTPSource(srv.URL, 0).DeleteAll(context.Background()))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/delete-data", path)
}

func TestHTTPSourceHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewHTTPSource(srv.URL, time.Minute).Comments(ctx, All())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
