package api

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matt-g-everett/anitx/stream"
	"github.com/matt-g-everett/anitx/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi() (*Api, *util.ObservableValue[*stream.Frame]) {
	latest := util.NewObservableValue[*stream.Frame](nil, nil)
	return NewApi(latest, slog.New(slog.NewTextHandler(io.Discard, nil))), latest
}

func TestFrameUnavailableBeforeFirstRender(t *testing.T) {
	a, _ := newTestApi()
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame.png", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFrameServesLatestPNG(t *testing.T) {
	a, latest := newTestApi()
	latest.Set(stream.NewFrame(3, 90*time.Millisecond, image.NewRGBA(image.Rect(0, 0, 5, 4))))

	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "3", rec.Header().Get("X-Frame-Index"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
}

func TestHealthAndMetrics(t *testing.T) {
	a, _ := newTestApi()
	routes := a.Routes()

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "anitx_frames_rendered_total")
}
