package mpesa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/oasis00-1/oasis-springs-app/internal/config"
)

// SuccessCode is the gateway response code that means the STK push
// reached the customer's phone.
const SuccessCode = "0"

type Client struct {
	httpClient *http.Client
	cfg        config.MpesaConfig
}

func NewClient(cfg config.MpesaConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type pushRequest struct {
	Phone  string `json:"phone"`
	Amount int    `json:"amount"`
}

type pushResponse struct {
	ResponseCode string `json:"ResponseCode"`
}

// SendPush asks the gateway to push a payment prompt for the grand total
// to the customer's M-PESA number and returns the gateway response code.
// Transport and decode failures come back as errors; a non-success code
// is not an error here, the caller decides how to degrade.
func (c *Client) SendPush(ctx context.Context, phone string, amount int) (string, error) {
	payload, err := json.Marshal(pushRequest{Phone: phone, Amount: amount})
	if err != nil {
		return "", fmt.Errorf("encode push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.PushURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call stk gateway: %w", err)
	}
	defer resp.Body.Close()

	var body pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode push response: %w", err)
	}
	return body.ResponseCode, nil
}
