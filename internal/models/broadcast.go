package models

// BroadcastRequest is a bulk email send to an explicit recipient list.
type BroadcastRequest struct {
	Emails  []string `json:"emails" validate:"required,min=1,dive,required,email"`
	Subject string   `json:"subject" validate:"required"`
	Message string   `json:"message" validate:"required"`
	IsHTML  bool     `json:"is_html"`
}

// Recipient outcome statuses.
const (
	BroadcastStatusSuccess = "success"
	BroadcastStatusFailed  = "failed"
)

// RecipientResult captures one recipient's dispatch outcome.
type RecipientResult struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BroadcastReport aggregates per-recipient outcomes of one bulk send.
type BroadcastReport struct {
	Results []RecipientResult `json:"results"`
	Sent    int               `json:"sent"`
	Failed  int               `json:"failed"`
}

// Partial reports whether at least one recipient failed.
func (r BroadcastReport) Partial() bool {
	return r.Failed > 0
}
