package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	"github.com/masjid-bouraoui/masjid-api/pkg/cache"
	"github.com/masjid-bouraoui/masjid-api/pkg/config"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

// PrayerQuery selects the location and calculation method for a timings lookup.
type PrayerQuery struct {
	Latitude  float64
	Longitude float64
	Method    int
	Date      string
}

// PrayerService fetches daily prayer timings from the upstream API, with a
// Redis-backed cache keyed by location/method/date.
type PrayerService struct {
	cfg    config.PrayerConfig
	client *http.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// NewPrayerService creates the service.
func NewPrayerService(cfg config.PrayerConfig, c *cache.Cache, logger *zap.Logger) *PrayerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrayerService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  c,
		logger: logger,
	}
}

type timingsResponse struct {
	Code int    `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Gregorian struct {
				Date string `json:"date"`
			} `json:"gregorian"`
			Hijri struct {
				Date string `json:"date"`
			} `json:"hijri"`
		} `json:"date"`
		Meta struct {
			Method struct {
				ID int `json:"id"`
			} `json:"method"`
		} `json:"meta"`
	} `json:"data"`
}

// Timings returns the prayer schedule for the given query. An empty date
// means today; an unset method falls back to the configured default.
func (s *PrayerService) Timings(ctx context.Context, q PrayerQuery) (*models.PrayerTimes, error) {
	if q.Latitude < -90 || q.Latitude > 90 || q.Longitude < -180 || q.Longitude > 180 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latitude and longitude are out of range")
	}
	if q.Method == 0 {
		q.Method = s.cfg.DefaultMethod
	}
	if q.Date == "" {
		q.Date = time.Now().Format("02-01-2006")
	}

	cacheKey := fmt.Sprintf("prayer:timings:%.4f:%.4f:%d:%s", q.Latitude, q.Longitude, q.Method, q.Date)
	var cached models.PrayerTimes
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("prayer cache read failed", zap.Error(err))
	}

	endpoint := fmt.Sprintf("%s/timings/%s?latitude=%f&longitude=%f&method=%d",
		s.cfg.BaseURL, q.Date, q.Latitude, q.Longitude, q.Method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build timings request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "prayer times service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("prayer times service returned status %d", resp.StatusCode))
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to decode timings response")
	}

	times := &models.PrayerTimes{
		Timings:       body.Data.Timings,
		GregorianDate: body.Data.Date.Gregorian.Date,
		HijriDate:     body.Data.Date.Hijri.Date,
		Method:        body.Data.Meta.Method.ID,
	}

	if err := s.cache.Set(ctx, cacheKey, times, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("prayer cache write failed", zap.Error(err))
	}

	return times, nil
}
