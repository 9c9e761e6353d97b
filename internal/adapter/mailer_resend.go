package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/utils"
)

type resendTransport struct {
	client *utils.HTTPClient
	apiKey string
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendEmailResponse struct {
	ID string `json:"id"`
}

func newResendTransport(cfg config.Email) (*resendTransport, error) {
	baseURL, err := normalizeBaseURL(cfg.ResendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid resend url: %w", err)
	}

	return &resendTransport{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.ResendAPIKey,
	}, nil
}

func (t *resendTransport) send(ctx context.Context, msg emailMessage) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetAuthToken(t.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(resendEmailRequest{
			From:    msg.From,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("%w: resend: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var sent resendEmailResponse
	if err = json.Unmarshal(resp.Body(), &sent); err != nil {
		return fmt.Errorf("decode resend response: %w", err)
	}
	if sent.ID == "" {
		return fmt.Errorf("resend returned no message id")
	}

	return nil
}

func (t *resendTransport) name() string {
	return "resend"
}
