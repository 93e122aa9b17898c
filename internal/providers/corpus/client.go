package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/metrics"
	"github.com/sandevgo/memberqa/pkg/log"
	"github.com/sandevgo/memberqa/pkg/retry"
)

const (
	DefaultURL      = "http://november7-730026606190.europe-west1.run.app/messages/"
	defaultTimeout  = 10 * time.Second
	defaultMaxBytes = 64 << 20
)

var ErrUnexpectedPayload = errors.New("unexpected messages payload")

type ClientConfig struct {
	URL      string
	Timeout  time.Duration
	MaxBytes int64
	Retry    *retry.Config
}

// Client fetches the message corpus from the upstream messages API.
type Client struct {
	url      string
	client   *http.Client
	retrier  *retry.Retrier
	maxBytes int64
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	return &Client{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		retrier:  retry.NewRetrier(cfg.Retry),
		maxBytes: cfg.MaxBytes,
	}
}

// Fetch returns every message, newest first.
func (c *Client) Fetch(ctx context.Context) ([]core.Message, error) {
	var msgs []core.Message
	err := c.retrier.Do(ctx, func() error {
		var err error
		msgs, err = c.fetchOnce(ctx)
		return err
	})
	metrics.RecordCorpusFetch(err)
	if err != nil {
		return nil, fmt.Errorf("fetch messages: %w", err)
	}

	log.FromCtx(ctx).Debug().Int("count", len(msgs)).Str("url", c.url).Msg("loaded messages")
	return msgs, nil
}

func (c *Client) fetchOnce(ctx context.Context) ([]core.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	if resp.StatusCode >= 300 {
		return nil, retry.Permanent(fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status))
	}

	msgs, err := DecodeMessages(data)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	return msgs, nil
}

// wireMessage tolerates null or missing fields.
type wireMessage struct {
	UserName  *string `json:"user_name"`
	Message   *string `json:"message"`
	Timestamp *string `json:"timestamp"`
}

func (w wireMessage) toMessage() core.Message {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return core.Message{
		UserName:  deref(w.UserName),
		Message:   deref(w.Message),
		Timestamp: deref(w.Timestamp),
	}
}

// DecodeMessages accepts either a bare JSON array of messages or an object
// carrying them under "items", and sorts the result newest first.
func DecodeMessages(data []byte) ([]core.Message, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedPayload)
	}

	var wire []wireMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case '{':
		var envelope struct {
			Items *[]wireMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		if envelope.Items == nil {
			return nil, fmt.Errorf("%w: object without items", ErrUnexpectedPayload)
		}
		wire = *envelope.Items
	default:
		return nil, fmt.Errorf("%w: starts with %q", ErrUnexpectedPayload, data[0])
	}

	msgs := make([]core.Message, len(wire))
	for i, w := range wire {
		msgs[i] = w.toMessage()
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp > msgs[j].Timestamp
	})
	return msgs, nil
}
