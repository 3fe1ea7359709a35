package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client talks to the accounting ledger service over HTTP. Salary payouts are
// mirrored there as expense transactions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TransactionRequest is the ledger service's transaction creation payload.
type TransactionRequest struct {
	RequestID         string          `json:"request_id"`
	TransactionType   string          `json:"transaction_type"`
	Category          string          `json:"category"`
	Subcategory       string          `json:"subcategory"`
	Amount            decimal.Decimal `json:"amount"`
	AmountBeforeTax   decimal.Decimal `json:"amount_before_tax"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	Description       string          `json:"description"`
	TransactionDate   string          `json:"transaction_date"`
	RelatedEntityID   string          `json:"related_entity_id,omitempty"`
	RelatedEntityType string          `json:"related_entity_type,omitempty"`
}

type transactionResponse struct {
	ID string `json:"id"`
}

// APIError represents a ledger service error response.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ledger API error [%d] %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// CreateExpenseTransaction records an expense in the ledger and returns the
// created transaction ID. A request ID is generated when the caller leaves it
// empty so the ledger can deduplicate retries.
func (c *Client) CreateExpenseTransaction(ctx context.Context, req TransactionRequest) (string, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	req.TransactionType = "EXPENSE"

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build transaction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call ledger service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ledger response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errBody); err == nil {
			apiErr.ErrorCode = errBody.Error.Code
			apiErr.Message = errBody.Error.Message
		}
		return "", apiErr
	}

	var created transactionResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", fmt.Errorf("failed to decode ledger response: %w", err)
	}

	return created.ID, nil
}
