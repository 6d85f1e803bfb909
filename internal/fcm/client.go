package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://fcm.googleapis.com"

// TokenMinter produces a bearer token for the FCM API.
type TokenMinter interface {
	Mint(ctx context.Context) (string, error)
}

// Client sends push notifications through the FCM HTTP v1 API, one message
// per device token.
type Client struct {
	httpClient *http.Client
	minter     TokenMinter
	projectID  string
	baseURL    string
	logger     *zap.Logger
}

func NewClient(logger *zap.Logger, minter TokenMinter, projectID string) *Client {
	return &Client{
		httpClient: &http.Client{},
		minter:     minter,
		projectID:  projectID,
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type message struct {
	Token        string            `json:"token"`
	Notification notification      `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type sendRequest struct {
	Message message `json:"message"`
}

// Send delivers one notification to one device token. A bearer token is
// minted fresh for every call. A non-2xx provider response is returned as an
// error; callers decide whether that aborts anything.
func (c *Client) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	accessToken, err := c.minter.Mint(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		Message: message{
			Token:        token,
			Notification: notification{Title: title, Body: body},
			Data:         data,
		},
	})
	if err != nil {
		return fmt.Errorf("encode fcm message: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", c.baseURL, c.projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build fcm request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send fcm message: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("fcm send rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return fmt.Errorf("fcm send failed: status %d", resp.StatusCode)
	}

	c.logger.Debug("fcm message sent", zap.ByteString("response", respBody))
	return nil
}
