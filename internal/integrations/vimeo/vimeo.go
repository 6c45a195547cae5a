package vimeo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vlatan/video-helper/internal/config"
	"github.com/vlatan/video-helper/internal/models"
	"github.com/vlatan/video-helper/internal/utils"
	"golang.org/x/time/rate"
)

// Largest accepted metadata response
const maxBodySize = 10 * 1024 * 1024

type Service struct {
	config  *config.Config
	client  *http.Client
	limiter *rate.Limiter // nil when unlimited
}

// Create new Vimeo metadata service
func New(cfg *config.Config) (*Service, error) {

	if cfg == nil {
		return nil, errors.New("unable to create Vimeo service with nil config")
	}

	// Zero timeout means no timeout
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	s := &Service{config: cfg, client: client}

	if cfg.RateLimit > 0 {
		limit := rate.Every(time.Minute / time.Duration(cfg.RateLimit))
		s.limiter = rate.NewLimiter(limit, max(cfg.RateBurst, 1))
	}

	return s, nil
}

// NewWithClient creates the service with a custom HTTP client
func NewWithClient(cfg *config.Config, client *http.Client) (*Service, error) {

	s, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if client != nil {
		s.client = client
	}

	return s, nil
}

// GetVideo fetches the legacy metadata records of a Vimeo video.
// The records are never empty on success.
func (s *Service) GetVideo(ctx context.Context, videoID string) ([]models.VimeoRecord, error) {

	endpoint := s.endpoint(videoID)
	if s.config.Debug {
		log.Printf("fetching Vimeo metadata from '%s'", endpoint)
	}

	rc := &utils.RetryConfig{
		MaxRetries: s.config.MaxRetries,
		Delay:      s.config.RetryDelay,
		MaxJitter:  s.config.RetryDelay / 2,
		MaxDelay:   s.config.HTTPTimeout,
	}

	records, err := utils.Retry(ctx, rc, func() ([]models.VimeoRecord, error) {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait; %w", err)
			}
		}
		return s.fetch(ctx, endpoint)
	})

	if err != nil {
		log.Printf("unable to get a response from Vimeo for video '%s': %v", videoID, err)
		return nil, fmt.Errorf("failed to fetch Vimeo metadata for video '%s'; %w", videoID, err)
	}

	return records, nil
}

// endpoint builds the metadata URL of a video
func (s *Service) endpoint(videoID string) string {
	return fmt.Sprintf(
		"%s/%s.%s",
		strings.TrimSuffix(s.config.VimeoAPIBase, "/"),
		url.PathEscape(videoID),
		s.config.VimeoAPIFormat,
	)
}

// fetch performs a single request and decodes the response
func (s *Service) fetch(ctx context.Context, endpoint string) ([]models.VimeoRecord, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request; %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed; %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response; %w", err)
	}

	var records []models.VimeoRecord
	switch s.config.VimeoAPIFormat {
	case config.PHP:
		records, err = decodePHP(body)
	case config.JSON:
		records, err = decodeJSON(body)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, s.config.VimeoAPIFormat)
	}

	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}
