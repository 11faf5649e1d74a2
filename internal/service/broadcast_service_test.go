package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/mailer"
)

type mockSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]error
	sendErr error
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	if err, ok := m.failFor[msg.To]; ok {
		return err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestBroadcastService(sender mailer.Sender) *BroadcastService {
	return NewBroadcastService(sender, validator.New(), zap.NewNop(), BroadcastConfig{
		Concurrency: 2,
		HeaderTitle: "Masjid Imam Malik",
		FooterLine:  "noreply@masjid-bouraoui.org",
	})
}

func TestBroadcastServiceAllSuccess(t *testing.T) {
	sender := &mockSender{}
	svc := newTestBroadcastService(sender)

	report, err := svc.Send(context.Background(), models.BroadcastRequest{
		Emails:  []string{"a@x.com", "b@x.com", "c@x.com"},
		Subject: "Eid announcement",
		Message: "Eid prayer at 7am",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.False(t, report.Partial())
	assert.Len(t, report.Results, 3)
	for _, r := range report.Results {
		assert.Equal(t, models.BroadcastStatusSuccess, r.Status)
	}
}

func TestBroadcastServicePartialFailure(t *testing.T) {
	sender := &mockSender{failFor: map[string]error{"b@x.com": errors.New("mailbox rejected")}}
	svc := newTestBroadcastService(sender)

	report, err := svc.Send(context.Background(), models.BroadcastRequest{
		Emails:  []string{"a@x.com", "b@x.com"},
		Subject: "Subject",
		Message: "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.True(t, report.Partial())

	assert.Equal(t, "a@x.com", report.Results[0].Email)
	assert.Equal(t, models.BroadcastStatusSuccess, report.Results[0].Status)
	assert.Equal(t, "b@x.com", report.Results[1].Email)
	assert.Equal(t, models.BroadcastStatusFailed, report.Results[1].Status)
	assert.Equal(t, "mailbox rejected", report.Results[1].Error)
}

func TestBroadcastServiceTransportDownNeverErrors(t *testing.T) {
	sender := &mockSender{sendErr: errors.New("connection refused")}
	svc := newTestBroadcastService(sender)

	report, err := svc.Send(context.Background(), models.BroadcastRequest{
		Emails:  []string{"a@x.com", "b@x.com"},
		Subject: "Subject",
		Message: "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 2, report.Failed)
}

func TestBroadcastServiceValidation(t *testing.T) {
	svc := newTestBroadcastService(&mockSender{})

	cases := []models.BroadcastRequest{
		{Subject: "Subject", Message: "Body"},
		{Emails: []string{"a@x.com"}, Message: "Body"},
		{Emails: []string{"a@x.com"}, Subject: "Subject"},
		{Emails: []string{"not-an-email"}, Subject: "Subject", Message: "Body"},
	}
	for _, req := range cases {
		_, err := svc.Send(context.Background(), req)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestBroadcastServiceHTMLWrapping(t *testing.T) {
	sender := &mockSender{}
	svc := newTestBroadcastService(sender)

	_, err := svc.Send(context.Background(), models.BroadcastRequest{
		Emails:  []string{"a@x.com"},
		Subject: "Subject <b>",
		Message: "line one\nline two",
		IsHTML:  true,
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	body := sender.sent[0].HTML
	assert.Empty(t, sender.sent[0].Text)
	assert.Contains(t, body, "Masjid Imam Malik")
	assert.Contains(t, body, "line one<br>line two")
	assert.Contains(t, body, "Subject &lt;b&gt;")
	assert.Contains(t, body, "noreply@masjid-bouraoui.org")
}

func TestBroadcastServicePlainTextVerbatim(t *testing.T) {
	sender := &mockSender{}
	svc := newTestBroadcastService(sender)

	message := "line one\nline two"
	_, err := svc.Send(context.Background(), models.BroadcastRequest{
		Emails:  []string{"a@x.com"},
		Subject: "Subject",
		Message: message,
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, message, sender.sent[0].Text)
	assert.Empty(t, sender.sent[0].HTML)
	assert.False(t, strings.Contains(sender.sent[0].Text, "<br>"))
}
