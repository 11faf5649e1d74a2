package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/pkg/cache"
	"github.com/masjid-bouraoui/masjid-api/pkg/config"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
)

func newTestQuranService(baseURL string) *QuranService {
	return NewQuranService(config.QuranConfig{
		BaseURL:  baseURL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	}, cache.New(nil), zap.NewNop())
}

func TestQuranServiceChapters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 200, "data": [
			{"number": 1, "name": "الفاتحة", "englishName": "Al-Fatiha", "numberOfAyahs": 7, "revelationType": "Meccan"},
			{"number": 2, "name": "البقرة", "englishName": "Al-Baqara", "numberOfAyahs": 286, "revelationType": "Medinan"}
		]}`)) //nolint:errcheck
	}))
	defer server.Close()

	svc := newTestQuranService(server.URL)
	chapters, err := svc.Chapters(context.Background())
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, 1, chapters[0].Number)
	assert.Equal(t, "Al-Fatiha", chapters[0].EnglishName)
	assert.Equal(t, 286, chapters[1].NumberOfAyahs)
}

func TestQuranServiceChapter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surah/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 200, "data": {
			"number": 1, "name": "الفاتحة", "englishName": "Al-Fatiha",
			"numberOfAyahs": 2, "revelationType": "Meccan",
			"ayahs": [
				{"numberInSurah": 1, "text": "بسم الله الرحمن الرحيم"},
				{"numberInSurah": 2, "text": "الحمد لله رب العالمين"}
			]
		}}`)) //nolint:errcheck
	}))
	defer server.Close()

	svc := newTestQuranService(server.URL)
	detail, err := svc.Chapter(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Al-Fatiha", detail.EnglishName)
	require.Len(t, detail.Verses, 2)
	assert.Equal(t, 1, detail.Verses[0].Number)
	assert.Equal(t, "بسم الله الرحمن الرحيم", detail.Verses[0].Text)
}

func TestQuranServiceChapterOutOfRange(t *testing.T) {
	svc := newTestQuranService("http://unused")

	for _, n := range []int{0, 115, -1} {
		_, err := svc.Chapter(context.Background(), n)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestQuranServiceUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestQuranService(server.URL)
	_, err := svc.Chapters(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}
