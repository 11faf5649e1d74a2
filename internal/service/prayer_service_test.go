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

const timingsBody = `{
	"code": 200,
	"data": {
		"timings": {"Fajr": "05:12", "Dhuhr": "12:48", "Asr": "16:21", "Maghrib": "19:03", "Isha": "20:31"},
		"date": {
			"gregorian": {"date": "31-08-2026"},
			"hijri": {"date": "18-03-1448"}
		},
		"meta": {"method": {"id": 3}}
	}
}`

func newTestPrayerService(baseURL string) *PrayerService {
	return NewPrayerService(config.PrayerConfig{
		BaseURL:       baseURL,
		DefaultMethod: 3,
		Timeout:       2 * time.Second,
		CacheTTL:      time.Minute,
	}, cache.New(nil), zap.NewNop())
}

func TestPrayerServiceTimings(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(timingsBody)) //nolint:errcheck
	}))
	defer server.Close()

	svc := newTestPrayerService(server.URL)
	times, err := svc.Timings(context.Background(), PrayerQuery{Latitude: 36.75, Longitude: 3.06, Date: "31-08-2026"})
	require.NoError(t, err)
	assert.Equal(t, "05:12", times.Timings["Fajr"])
	assert.Equal(t, "31-08-2026", times.GregorianDate)
	assert.Equal(t, "18-03-1448", times.HijriDate)
	assert.Equal(t, 3, times.Method)
	assert.Contains(t, requestedPath, "/timings/31-08-2026")
	assert.Contains(t, requestedPath, "latitude=36.75")
	assert.Contains(t, requestedPath, "method=3")
}

func TestPrayerServiceTimingsRejectsOutOfRange(t *testing.T) {
	svc := newTestPrayerService("http://unused")

	for _, q := range []PrayerQuery{
		{Latitude: 91, Longitude: 3.06},
		{Latitude: -91, Longitude: 3.06},
		{Latitude: 36.75, Longitude: 181},
		{Latitude: 36.75, Longitude: -181},
	} {
		_, err := svc.Timings(context.Background(), q)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestPrayerServiceTimingsZeroCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(timingsBody)) //nolint:errcheck
	}))
	defer server.Close()

	svc := newTestPrayerService(server.URL)
	times, err := svc.Timings(context.Background(), PrayerQuery{Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.Equal(t, "05:12", times.Timings["Fajr"])
}

func TestPrayerServiceTimingsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTestPrayerService(server.URL)
	_, err := svc.Timings(context.Background(), PrayerQuery{Latitude: 36.75, Longitude: 3.06})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}

func TestPrayerServiceTimingsUnreachable(t *testing.T) {
	svc := newTestPrayerService("http://127.0.0.1:1")

	_, err := svc.Timings(context.Background(), PrayerQuery{Latitude: 36.75, Longitude: 3.06})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}
