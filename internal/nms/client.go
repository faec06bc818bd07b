// Package nms はMagma NMS REST APIのクライアントを提供する。
package nms

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oyaguma3/nms-subscriber-console/internal/config"
	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
	"github.com/oyaguma3/nms-subscriber-console/pkg/httputil"
	"github.com/oyaguma3/nms-subscriber-console/pkg/logging"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
	"github.com/sony/gobreaker"
)

// Client はNMS APIクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
	networkID  string
	fields     *logging.CommonFields
}

// NewClient は新しいNMS APIクライアントを生成する。
// クライアント証明書が設定されている場合は相互TLSで接続する。
func NewClient(cfg *config.Config) (*Client, error) {
	httpClient := resty.New().
		SetTimeout(config.NMSRequestTimeout)

	if cfg.HasClientCert() || cfg.InsecureSkipVerify {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // 検証環境の自己署名証明書向け
		}
		if cfg.HasClientCert() {
			cert, err := tls.LoadX509KeyPair(cfg.NMSClientCert, cfg.NMSClientKey)
			if err != nil {
				return nil, fmt.Errorf("failed to load client certificate: %w", err)
			}
			tlsConfig.Certificates = []tls.Certificate{cert}
		}
		httpClient.SetTLSClientConfig(tlsConfig)
	}

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					logging.WithEventID(logging.EventCBOpen),
					slog.String("cb_name", name),
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					logging.WithEventID(logging.EventCBHalfOpen),
					slog.String("cb_name", name),
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					logging.WithEventID(logging.EventCBClose),
					slog.String("cb_name", name),
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.NMSAPIURL, "/"),
		networkID:  cfg.NMSNetworkID,
		fields:     logging.NewCommonFields(logging.NewMasker(cfg.LogMaskIMSI)),
	}, nil
}

// ListSubscribers はネットワーク内の全加入者を取得する。
func (c *Client) ListSubscribers(ctx context.Context) (map[string]*model.Subscriber, error) {
	body, err := c.execute(ctx, &request{
		op:     opListSubscribers,
		method: http.MethodGet,
		path:   fmt.Sprintf(pathSubscribers, url.PathEscape(c.networkID)),
	})
	if err != nil {
		return nil, err
	}

	subscribers := map[string]*model.Subscriber{}
	if err := decode(body, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// GetSubscriber は加入者を1件取得する。
// 存在しない場合はapperr.ErrSubscriberNotFoundを含むエラーを返す。
func (c *Client) GetSubscriber(ctx context.Context, id string) (*model.Subscriber, error) {
	body, err := c.execute(ctx, &request{
		op:     opGetSubscriber,
		method: http.MethodGet,
		path:   c.subscriberPath(id),
		imsi:   id,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, fmt.Errorf("%w: %w", apperr.ErrSubscriberNotFound, apiErr)
		}
		return nil, err
	}

	var sub model.Subscriber
	if err := decode(body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubscriber は加入者を新規登録する。
func (c *Client) CreateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error {
	_, err := c.execute(ctx, &request{
		op:     opCreateSubscriber,
		method: http.MethodPost,
		path:   fmt.Sprintf(pathSubscribers, url.PathEscape(c.networkID)),
		imsi:   sub.ID,
		body:   sub,
	})
	return err
}

// UpdateSubscriber は既存の加入者を上書き更新する。
func (c *Client) UpdateSubscriber(ctx context.Context, sub *model.MutableSubscriber) error {
	_, err := c.execute(ctx, &request{
		op:     opUpdateSubscriber,
		method: http.MethodPut,
		path:   c.subscriberPath(sub.ID),
		imsi:   sub.ID,
		body:   sub,
	})
	return err
}

// ListAPNs はネットワークに定義されたAPN名の一覧を取得する。
func (c *Client) ListAPNs(ctx context.Context) ([]string, error) {
	body, err := c.execute(ctx, &request{
		op:     opListAPNs,
		method: http.MethodGet,
		path:   fmt.Sprintf(pathAPNs, url.PathEscape(c.networkID)),
	})
	if err != nil {
		return nil, err
	}

	var apns map[string]json.RawMessage
	if err := decode(body, &apns); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(apns)), nil
}

// ListPolicyRules はネットワークに定義されたポリシールールIDの一覧を取得する。
func (c *Client) ListPolicyRules(ctx context.Context) ([]string, error) {
	body, err := c.execute(ctx, &request{
		op:     opListPolicyRules,
		method: http.MethodGet,
		path:   fmt.Sprintf(pathPolicyRules, url.PathEscape(c.networkID)),
	})
	if err != nil {
		return nil, err
	}

	var rules []string
	if err := decode(body, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListSubProfiles はEPC設定に定義されたサブスクライバプロファイル名の一覧を取得する。
func (c *Client) ListSubProfiles(ctx context.Context) ([]string, error) {
	body, err := c.execute(ctx, &request{
		op:     opListSubProfiles,
		method: http.MethodGet,
		path:   fmt.Sprintf(pathCellularEPC, url.PathEscape(c.networkID)),
	})
	if err != nil {
		return nil, err
	}

	var epc cellularEPC
	if err := decode(body, &epc); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(epc.SubProfiles)), nil
}

func (c *Client) subscriberPath(id string) string {
	return fmt.Sprintf(pathSubscriber, url.PathEscape(c.networkID), url.PathEscape(id))
}

// execute はCircuit Breaker経由でAPIを呼び出し、2xxの場合はレスポンスボディを返す。
func (c *Client) execute(ctx context.Context, req *request) ([]byte, error) {
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		r := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderAccept, httputil.ContentTypeJSON)
		if req.body != nil {
			r.SetHeader(HeaderContentType, httputil.ContentTypeJSON).SetBody(req.body)
		}

		resp, err := r.Execute(req.method, c.baseURL+req.path)
		if err != nil {
			c.logError(req, &ConnectionError{Cause: err}, 0, time.Since(start).Milliseconds())
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx
		if statusCode >= 500 {
			apiErr := parseAPIError(statusCode, resp.Body())
			c.logError(req, apiErr, statusCode, latencyMs)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 4xx等
		if statusCode < 200 || statusCode >= 300 {
			apiErr := parseAPIError(statusCode, resp.Body())
			c.logError(req, apiErr, statusCode, latencyMs)
			// CB対象外エラーはnilを返してCBカウントに含めない
			return apiErr, nil
		}

		slog.Debug("nms api success",
			slog.String("op", req.op),
			logging.WithHTTPStatus(statusCode),
			logging.WithLatency(latencyMs),
		)

		return resp.Body(), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}

	if apiErr, ok := result.(*APIError); ok {
		return nil, apiErr
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, ErrInvalidResponse
	}
	return body, nil
}

func (c *Client) logError(req *request, err error, statusCode int, latencyMs int64) {
	attrs := []any{
		logging.WithEventID(logging.EventNMSAPIError),
		slog.String("op", req.op),
		logging.WithError(err),
		logging.WithHTTPStatus(statusCode),
		logging.WithLatency(latencyMs),
	}
	if req.imsi != "" {
		attrs = append(attrs, c.fields.WithIMSI(req.imsi))
	}
	slog.Error("nms api error", attrs...)
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(statusCode int, body []byte) *APIError {
	message := httputil.ErrorMessage(body)
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return nil
}
