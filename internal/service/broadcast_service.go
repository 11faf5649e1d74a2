package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/masjid-bouraoui/masjid-api/internal/models"
	appErrors "github.com/masjid-bouraoui/masjid-api/pkg/errors"
	"github.com/masjid-bouraoui/masjid-api/pkg/mailer"
)

// htmlShell is the fixed presentational wrapper applied to HTML broadcasts.
const htmlShell = `<!DOCTYPE html>
<html dir="rtl">
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="font-family: serif; background-color: #f4f4f4; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #ffffff; border-radius: 10px;">
<div style="text-align: center; padding: 20px; background-color: #1a4d2e; color: #ffffff; border-radius: 10px 10px 0 0;"><h1>%s</h1></div>
<div style="padding: 20px;"><h2 style="color: #1a4d2e;">%s</h2><p style="line-height: 1.6;">%s</p></div>
<div style="text-align: center; padding: 10px; font-size: 12px; color: #777;"><p>%s</p></div>
</div>
</body>
</html>`

// BroadcastConfig tunes the fan-out and the template header/footer lines.
type BroadcastConfig struct {
	Concurrency int
	HeaderTitle string
	FooterLine  string
}

// BroadcastService dispatches one email per recipient and aggregates
// per-recipient outcomes. A recipient failure never fails the request.
type BroadcastService struct {
	sender    mailer.Sender
	validator *validator.Validate
	logger    *zap.Logger
	config    BroadcastConfig
}

// NewBroadcastService creates the service.
func NewBroadcastService(sender mailer.Sender, validate *validator.Validate, logger *zap.Logger, config BroadcastConfig) *BroadcastService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 8
	}
	return &BroadcastService{sender: sender, validator: validate, logger: logger, config: config}
}

// Send dispatches the message to every recipient concurrently. Each
// dispatch succeeds or fails independently; the report carries one entry
// per recipient in request order.
func (s *BroadcastService) Send(ctx context.Context, req models.BroadcastRequest) (*models.BroadcastReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "emails, subject and message are required")
	}

	msg := s.buildMessage(req)
	results := make([]models.RecipientResult, len(req.Emails))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.config.Concurrency)
	for i, email := range req.Emails {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			m := msg
			m.To = email
			if err := s.sender.Send(ctx, m); err != nil {
				s.logger.Warn("broadcast dispatch failed", zap.String("to", email), zap.Error(err))
				results[i] = models.RecipientResult{Email: email, Status: models.BroadcastStatusFailed, Error: err.Error()}
				return
			}
			results[i] = models.RecipientResult{Email: email, Status: models.BroadcastStatusSuccess}
		}(i, email)
	}
	wg.Wait()

	report := &models.BroadcastReport{Results: results}
	for _, r := range results {
		if r.Status == models.BroadcastStatusSuccess {
			report.Sent++
		} else {
			report.Failed++
		}
	}

	s.logger.Info("broadcast completed",
		zap.Int("recipients", len(req.Emails)),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

func (s *BroadcastService) buildMessage(req models.BroadcastRequest) mailer.Message {
	msg := mailer.Message{Subject: req.Subject}
	if req.IsHTML {
		body := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
		msg.HTML = fmt.Sprintf(htmlShell, s.config.HeaderTitle, html.EscapeString(req.Subject), body, s.config.FooterLine)
	} else {
		msg.Text = req.Message
	}
	return msg
}
