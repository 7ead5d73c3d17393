package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("demo", "preset123")
	c.baseURL = srv.URL
	return c
}

func TestUploadRoutesByContentType(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "preset123", r.FormValue("upload_preset"))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/x.jpg"}`))
	})

	res, err := c.Upload(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("fake-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/demo/image/upload", gotPath)
	assert.Equal(t, "image", res.Type)
	assert.Equal(t, "https://res.cloudinary.com/demo/x.jpg", res.URL)

	res, err = c.Upload(context.Background(), "clip.mp4", "video/mp4", strings.NewReader("fake-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/demo/video/upload", gotPath)
	assert.Equal(t, "video", res.Type)
}

func TestUploadErrorSurfacesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusBadRequest)
	})

	_, err := c.Upload(context.Background(), "photo.jpg", "image/jpeg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}
