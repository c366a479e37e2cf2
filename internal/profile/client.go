package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"swaypp-service/internal/config"
	"swaypp-service/internal/payee"
)

const defaultTimeoutMs = 2_000

// Client looks up merchant profiles in the hosted profile service. A 404 is
// a miss, not an error; the resolver treats any error as a miss anyway, so
// the client never needs retries.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.Profile) *Client {
	timeoutMs := cfg.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeoutMs
	}

	return &Client{
		client:  &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type profileResponse struct {
	BeneficiaryName string `json:"beneficiary_name"`
	BusinessName    string `json:"business_name"`
	Address         string `json:"address"`
	PostalCode      string `json:"postal_code"`
	City            string `json:"city"`
	IBAN            string `json:"iban"`
}

func (c *Client) GetProfile(ctx context.Context, merchantID string) (*payee.Partial, error) {
	endpoint := c.baseURL + "/profiles/" + url.PathEscape(merchantID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create profile request")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch merchant profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode >= 400 {
		return nil, errors.Errorf("profile service error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read profile response")
	}

	var dto profileResponse
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, errors.Wrap(err, "decode profile response")
	}

	return &payee.Partial{
		BeneficiaryName: dto.BeneficiaryName,
		BusinessName:    dto.BusinessName,
		Address:         dto.Address,
		PostalCode:      dto.PostalCode,
		City:            dto.City,
		IBAN:            dto.IBAN,
	}, nil
}
