package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"vpaas/internal/domain"

	"github.com/wb-go/wbf/zlog"
)

const maxErrorBody = 4 << 10

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zlog.Zerolog
}

func NewClient(endpoint string, timeout time.Duration, logger *zlog.Zerolog) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit sends one multipart POST carrying the selected file and the target
// dimensions. Nothing is sent when the request does not validate.
func (c *Client) Submit(ctx context.Context, req *Request) (*Receipt, error) {
	file, err := req.Validate()
	if err != nil {
		return nil, err
	}

	dimension, err := json.Marshal(req.NewDimension)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dimensions: %w", err)
	}

	body, writer := io.Pipe()
	mw := multipart.NewWriter(writer)

	go func() {
		writer.CloseWithError(writeParts(mw, file, dimension))
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		body.Close()
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Str("filename", file.Name).
		Str("content_type", file.ContentType).
		Uint32("width", req.NewDimension.Width).
		Uint32("height", req.NewDimension.Height).
		Msg("Uploading video")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEndpointUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, readStatusError(resp)
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.logger.Info().
		Str("job_id", receipt.ID).
		Str("filename", file.Name).
		Int("status_code", resp.StatusCode).
		Msg("Video accepted")

	return &receipt, nil
}

func writeParts(mw *multipart.Writer, file *FileSelected, dimension []byte) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = domain.DefaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		domain.FieldFile, escapeQuotes(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}

	if err := mw.WriteField(domain.FieldNewDimension, string(dimension)); err != nil {
		return fmt.Errorf("failed to write dimension part: %w", err)
	}

	return mw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func readStatusError(resp *http.Response) error {
	statusErr := &StatusError{Code: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return statusErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		statusErr.Message = payload.Message
	} else {
		statusErr.Message = strings.TrimSpace(string(data))
	}

	return statusErr
}
