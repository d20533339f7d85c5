package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/utils"
)

const (
	currentAccountPath = "/api/account/current"
	traceIDHeader      = "X-Trace-ID"
)

type accountResponse struct {
	AccountID *string `json:"account_id"`
}

type httpAccountStatusSource struct {
	client *utils.HTTPClient
}

// NewHTTPAccountStatusSource constructs an HTTP implementation of
// [AccountStatusSource] that queries GET /api/account/current on the
// configured address.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAccountStatusSource(adapterCfg config.Adapter) (AccountStatusSource, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().Configure(baseURL, adapterCfg.RequestTimeout, adapterCfg.Token)

	return &httpAccountStatusSource{client: client}, nil
}

// NewAccountStatusSource picks the HTTP source when an address is configured
// and the static source otherwise.
func NewAccountStatusSource(adapterCfg config.Adapter) (AccountStatusSource, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return NewStaticAccountStatusSource(adapterCfg.StaticAccountID), nil
	}
	return NewHTTPAccountStatusSource(adapterCfg)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CurrentAccountID implements [AccountStatusSource]. A blank account id in
// the response is reported as nil.
func (h *httpAccountStatusSource) CurrentAccountID(ctx context.Context, containerID string) (*string, error) {
	log := logger.FromContext(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("container", containerID)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(currentAccountPath)
	if err != nil {
		log.Err(err).Str("func", "httpAccountStatusSource.CurrentAccountID").
			Str("container_id", containerID).Msg("account status request failed")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpAccountStatusSource.CurrentAccountID").
			Str("container_id", containerID).Int("status", resp.StatusCode()).Msg("account status request rejected")
		return nil, err
	}

	var body accountResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return normalizeAccountID(body.AccountID), nil
}

func normalizeAccountID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
