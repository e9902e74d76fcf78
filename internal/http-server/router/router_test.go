package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vpaas/internal/domain"
	"vpaas/internal/http-server/handler/page"
	"vpaas/internal/http-server/handler/video"
	"vpaas/internal/upload"
	"vpaas/internal/web/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/zlog"
)

type stubUploader struct{}

func (stubUploader) Submit(ctx context.Context, req *upload.Request) (*upload.Receipt, error) {
	return &upload.Receipt{ID: "job-1"}, nil
}

type stubUsecase struct{}

func (stubUsecase) SubmitVideo(ctx context.Context, file io.Reader, filename, contentType string, fileSize int64, dims domain.Dimensions) (*domain.TranscoderJob, error) {
	return domain.NewTranscoderJob("job-1", "uploads/job-1.mp4", dims, nil), nil
}

func webServer(t *testing.T) *httptest.Server {
	t.Helper()

	zlog.Init()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	h := &Handler{
		PageHandler: page.NewPageHandler(stubUploader{}, renderer, domain.Downscale240p, &zlog.Logger),
	}

	srv := httptest.NewServer(SetupRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestWebRoutes(t *testing.T) {
	srv := webServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantForm   bool
	}{
		{"/", http.StatusOK, true},
		{"/blogs", http.StatusOK, false},
		{"/contact", http.StatusOK, false},
		{"/blogs/", http.StatusOK, false},
		{"/no/such/page", http.StatusNotFound, false},
		{"//", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, srv.URL+tt.path)

			assert.Equal(t, tt.wantStatus, status)
			assert.Contains(t, body, `href="/contact"`)
			assert.Equal(t, tt.wantForm, strings.Contains(body, "<form"))
		})
	}
}

func TestWebHealth(t *testing.T) {
	status, body := get(t, webServer(t).URL+"/health")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestOrchestratorRoutes(t *testing.T) {
	zlog.Init()
	h := &OrchestratorHandler{VideoHandler: video.NewVideoHandler(stubUsecase{}, &zlog.Logger)}

	srv := httptest.NewServer(SetupOrchestratorRouter(h))
	defer srv.Close()

	status, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello, World!", body)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/videos", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://127.0.0.1:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://127.0.0.1:3000")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	status, _ = get(t, srv.URL+"/videos")
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}
