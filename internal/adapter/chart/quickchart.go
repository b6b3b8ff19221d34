package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Renderer turns a chart configuration into a shareable image URL.
type Renderer interface {
	Render(ctx context.Context, config Config) (string, error)
}

type renderRequest struct {
	Chart            Config  `json:"chart"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Background       string  `json:"bkg"`
	Format           string  `json:"format"`
	DevicePixelRatio float64 `json:"devicePixelRatio"`
}

type renderResponse struct {
	URL string `json:"url"`
}

// QuickChartRenderer renders charts through the QuickChart create endpoint.
type QuickChartRenderer struct {
	baseURL string
	logger  *zap.Logger
	client  *http.Client
}

func NewQuickChartRenderer(baseURL string, timeout time.Duration, logger *zap.Logger) *QuickChartRenderer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &QuickChartRenderer{
		baseURL: baseURL,
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Render posts the configuration to QuickChart and returns the hosted image URL.
func (r *QuickChartRenderer) Render(ctx context.Context, config Config) (string, error) {
	payload := renderRequest{
		Chart:            config,
		Width:            500,
		Height:           300,
		Background:       "transparent",
		Format:           "png",
		DevicePixelRatio: 1,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/create", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create chart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("quickchart request failed", zap.Error(err))
		return "", fmt.Errorf("call quickchart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("quickchart returned non-200 status",
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("quickchart returned status %d", resp.StatusCode)
	}

	var result renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode quickchart response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("quickchart response missing url")
	}

	return result.URL, nil
}
