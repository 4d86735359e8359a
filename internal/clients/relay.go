package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mwhite7112/webreader/internal/lookup"
)

// RelayClient calls the lookup relay from the reader side.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	return &RelayClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Lookup posts req to /analisar and decodes the result.
func (c *RelayClient) Lookup(ctx context.Context, req lookup.Request) (lookup.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return lookup.Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analisar", bytes.NewReader(body))
	if err != nil {
		return lookup.Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return lookup.Result{}, fmt.Errorf("relay lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error != "" {
			return lookup.Result{}, fmt.Errorf("relay lookup: unexpected status %d: %s", resp.StatusCode, errBody.Error)
		}
		return lookup.Result{}, fmt.Errorf("relay lookup: unexpected status %d", resp.StatusCode)
	}

	var result lookup.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return lookup.Result{}, fmt.Errorf("relay lookup decode: %w", err)
	}
	if result.Synonyms == nil {
		result.Synonyms = []string{}
	}
	return result, nil
}
