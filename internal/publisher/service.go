package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"haikufind/internal/config"
	"haikufind/internal/services"
)

const userAgent = "haikufind/0.1.0"

// Service posts text to an external service and returns the created post id.
type Service interface {
	Publish(ctx context.Context, text string) (string, error)
	Enabled() bool
}

// NewService builds a publisher from configuration. A disabled publisher
// yields a noop implementation; an enabled publisher without a bearer token
// fails fast with a configuration error.
func NewService(cfg *config.Config) (Service, error) {
	if !cfg.Publisher.Enabled {
		return noopService{}, nil
	}
	if strings.TrimSpace(cfg.Publisher.BearerToken) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "publisher", "new",
			"publisher.bearer_token is required (or set HAIKUFIND_BEARER_TOKEN)", nil)
	}

	timeout := time.Duration(cfg.Publisher.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &httpService{
		endpoint: cfg.Publisher.Endpoint,
		token:    cfg.Publisher.BearerToken,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type httpService struct {
	endpoint string
	token    string
	client   *http.Client
}

type createRequest struct {
	Text string `json:"text"`
}

type createResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (p *httpService) Enabled() bool { return true }

func (p *httpService) Publish(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(createRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("encode post body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrTransport, "publisher", "publish", "send post request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", services.Wrap(services.ErrTransport, "publisher", "publish",
			fmt.Sprintf("endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))), nil)
	}

	var decoded createResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", services.Wrap(services.ErrTransport, "publisher", "publish", "decode response", err)
	}
	if decoded.Data.ID == "" {
		return "", services.Wrap(services.ErrTransport, "publisher", "publish", "response missing post id", nil)
	}
	return decoded.Data.ID, nil
}

type noopService struct{}

func (noopService) Enabled() bool { return false }

func (noopService) Publish(context.Context, string) (string, error) {
	return "", services.Wrap(services.ErrConfiguration, "publisher", "publish",
		"publishing is disabled; enable [publisher] in config or use --dry-run", nil)
}
