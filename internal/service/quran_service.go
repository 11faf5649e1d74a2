package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	"github.com/masjid-bouraoui/masjid-api/pkg/cache"
	"github.com/masjid-bouraoui/masjid-api/pkg/config"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

const quranChapterCount = 114

// QuranService serves chapter summaries and verse text from the upstream
// Quran-text API, cached in Redis since the content never changes.
type QuranService struct {
	cfg    config.QuranConfig
	client *http.Client
	cache  *cache.Cache
	logger *zap.Logger
}

// NewQuranService creates the service.
func NewQuranService(cfg config.QuranConfig, c *cache.Cache, logger *zap.Logger) *QuranService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuranService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  c,
		logger: logger,
	}
}

type surahListResponse struct {
	Code int `json:"code"`
	Data []struct {
		Number         int    `json:"number"`
		Name           string `json:"name"`
		EnglishName    string `json:"englishName"`
		NumberOfAyahs  int    `json:"numberOfAyahs"`
		RevelationType string `json:"revelationType"`
	} `json:"data"`
}

type surahResponse struct {
	Code int `json:"code"`
	Data struct {
		Number         int    `json:"number"`
		Name           string `json:"name"`
		EnglishName    string `json:"englishName"`
		NumberOfAyahs  int    `json:"numberOfAyahs"`
		RevelationType string `json:"revelationType"`
		Ayahs          []struct {
			NumberInSurah int    `json:"numberInSurah"`
			Text          string `json:"text"`
		} `json:"ayahs"`
	} `json:"data"`
}

// Chapters returns the 114 chapter summaries.
func (s *QuranService) Chapters(ctx context.Context) ([]models.QuranChapter, error) {
	const cacheKey = "quran:chapters"
	var cached []models.QuranChapter
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("quran cache read failed", zap.Error(err))
	}

	var body surahListResponse
	if err := s.fetch(ctx, s.cfg.BaseURL+"/surah", &body); err != nil {
		return nil, err
	}

	chapters := make([]models.QuranChapter, 0, len(body.Data))
	for _, d := range body.Data {
		chapters = append(chapters, models.QuranChapter{
			Number:         d.Number,
			Name:           d.Name,
			EnglishName:    d.EnglishName,
			NumberOfAyahs:  d.NumberOfAyahs,
			RevelationType: d.RevelationType,
		})
	}

	if err := s.cache.Set(ctx, cacheKey, chapters, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("quran cache write failed", zap.Error(err))
	}
	return chapters, nil
}

// Chapter returns one chapter with its verses.
func (s *QuranService) Chapter(ctx context.Context, number int) (*models.QuranChapterDetail, error) {
	if number < 1 || number > quranChapterCount {
		return nil, appErrors.Clone(appErrors.ErrValidation, "chapter number must be between 1 and 114")
	}

	cacheKey := fmt.Sprintf("quran:chapter:%d", number)
	var cached models.QuranChapterDetail
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("quran cache read failed", zap.Error(err))
	}

	var body surahResponse
	if err := s.fetch(ctx, fmt.Sprintf("%s/surah/%d", s.cfg.BaseURL, number), &body); err != nil {
		return nil, err
	}

	detail := &models.QuranChapterDetail{
		QuranChapter: models.QuranChapter{
			Number:         body.Data.Number,
			Name:           body.Data.Name,
			EnglishName:    body.Data.EnglishName,
			NumberOfAyahs:  body.Data.NumberOfAyahs,
			RevelationType: body.Data.RevelationType,
		},
		Verses: make([]models.QuranVerse, 0, len(body.Data.Ayahs)),
	}
	for _, a := range body.Data.Ayahs {
		detail.Verses = append(detail.Verses, models.QuranVerse{Number: a.NumberInSurah, Text: a.Text})
	}

	if err := s.cache.Set(ctx, cacheKey, detail, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("quran cache write failed", zap.Error(err))
	}
	return detail, nil
}

func (s *QuranService) fetch(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build quran request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "quran service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("quran service returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to decode quran response")
	}
	return nil
}
