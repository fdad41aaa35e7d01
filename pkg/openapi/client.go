package openapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/pkg/log"
	"github.com/ysEthan/magic-sync/pkg/signer"
	"github.com/ysEthan/magic-sync/types"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const CodeOK = 200

var (
	ErrHTTPStatus = errors.New("openapi: unexpected http status")
	ErrBusiness   = errors.New("openapi: business error")
	ErrProtocol   = errors.New("openapi: malformed response")
)

type Client struct {
	HTTP        *http.Client
	Signer      *signer.Signer
	ItemListURL string
	PushSpecURL string
	MaxRetries  int
	Backoff     time.Duration
}

func NewClient(cfg *config.OpenAPIConfig) *Client {
	retries := 0
	if cfg.MaxRetries != nil {
		retries = *cfg.MaxRetries
	}
	return &Client{
		HTTP:        &http.Client{Timeout: cfg.Timeout},
		Signer:      signer.New(cfg.AppKey, cfg.AppName, cfg.Sid),
		ItemListURL: cfg.ItemListURL,
		PushSpecURL: cfg.PushSpecURL,
		MaxRetries:  retries,
		Backoff:     time.Second,
	}
}

func ProvideClient(cfg *config.Config) *Client {
	return NewClient(cfg.OpenAPI)
}

// GetItemList 拉取一页商品，单条记录保持原始 JSON，由入库时逐条解析
func (c *Client) GetItemList(ctx context.Context, req *types.ItemListRequest) (*types.ItemPage, error) {
	body, err := Marshal(req)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, c.ItemListURL, body)
	if err != nil {
		return nil, err
	}

	data := gjson.GetBytes(raw, "data")
	if !data.IsObject() {
		return nil, fmt.Errorf("%w: missing data object", ErrProtocol)
	}
	var page types.ItemPage
	if err := json.Unmarshal([]byte(data.Raw), &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}
	return &page, nil
}

// PushSpec 回写申报品名
func (c *Client) PushSpec(ctx context.Context, goods []types.DeclareGoods) error {
	body, err := Marshal(goods)
	if err != nil {
		return err
	}
	_, err = c.post(ctx, c.PushSpecURL, body)
	return err
}

// Marshal 紧凑 JSON，不转义中文和 <>&，签名和请求体必须是同一个字符串
func Marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// linearBackOff 第 n 次重试前等待 n*step
type linearBackOff struct {
	step time.Duration
	n    int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return time.Duration(b.n) * b.step
}

func (b *linearBackOff) Reset() {
	b.n = 0
}

// post 传输错误、429、5xx 重试，业务错误和其他 4xx 直接返回
func (c *Client) post(ctx context.Context, url, body string) ([]byte, error) {
	retries := c.MaxRetries
	if retries < 0 {
		retries = 0
	}

	operation := func() ([]byte, error) {
		raw, retryable, err := c.do(ctx, url, body)
		if err != nil && !retryable {
			return nil, backoff.Permanent(err)
		}
		return raw, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(&linearBackOff{step: c.Backoff}),
		backoff.WithMaxTries(uint(retries)+1),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			log.L.Warn("openapi retry", zap.String("url", url), zap.Duration("wait", wait), zap.Error(err))
		}),
	)
}

// do 发一次请求，每次都重新签名
func (c *Client) do(ctx context.Context, url, body string) ([]byte, bool, error) {
	env := c.Signer.Sign(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(env.Body))
	if err != nil {
		return nil, false, err
	}
	req.URL.RawQuery = env.Params.Query().Encode()
	for k, v := range env.Headers {
		req.Header.Set(k, v)
	}

	log.L.Debug("openapi request", zap.String("url", url),
		zap.String("timestamp", env.Params.Timestamp), zap.String("body", body))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("openapi request %s: %w", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("openapi read body: %w", err)
	}
	log.L.Info("openapi response", zap.String("url", url), zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("%w %d: %s", ErrHTTPStatus, resp.StatusCode, truncate(raw))
	}

	if err := checkEnvelope(raw); err != nil {
		return nil, false, err
	}
	return raw, false, nil
}

func checkEnvelope(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: %s", ErrProtocol, truncate(raw))
	}
	code := gjson.GetBytes(raw, "code")
	if !code.Exists() {
		return fmt.Errorf("%w: missing code", ErrProtocol)
	}
	if code.Int() != CodeOK {
		return fmt.Errorf("%w: code=%d message=%s", ErrBusiness, code.Int(), gjson.GetBytes(raw, "message").String())
	}
	return nil
}

func truncate(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
