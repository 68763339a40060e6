// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-seed-keeper/internal/config"
	"github.com/MKhiriev/go-seed-keeper/internal/logger"
	"github.com/MKhiriev/go-seed-keeper/internal/utils"
	"github.com/MKhiriev/go-seed-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerRequestID     = "X-Request-ID"
	headerChangedFields = "X-Changed-Fields"

	defaultPageSize = 50
)

type httpRemoteStore struct {
	client    *utils.HTTPClient
	requestID *utils.UUIDGenerator
	pageSize  int

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	pageSize := adapterCfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &httpRemoteStore{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		requestID: utils.NewUUIDGenerator(),
		pageSize:  pageSize,
		now:       time.Now,
		logger:    log.WithComponent("remote_store"),
	}, nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request builds a request carrying the bearer token and a fresh request id.
func (h *httpRemoteStore) request(ctx context.Context) (*resty.Request, string) {
	id := h.requestID.Generate()
	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, id)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req, id
}

func recordPath(namespace, name string) string {
	return "/api/records/" + url.PathEscape(namespace) + "/" + url.PathEscape(name)
}

// changedFields lists the JSON fields of record that carry a value.
func changedFields(record models.SeedBackup) []string {
	fields := make([]string, 0, 4)
	if record.Phrase != "" {
		fields = append(fields, "phrase")
	}
	if record.Language != "" {
		fields = append(fields, "language")
	}
	if record.Name != "" {
		fields = append(fields, "name")
	}
	if !record.CreatedAt.IsZero() {
		fields = append(fields, "created_at")
	}
	return fields
}

// Upload implements [RemoteStore]. It PUTs the record to
// PUT /api/records/{namespace}/{name}. The X-Changed-Fields header tells the
// server which fields to overwrite.
func (h *httpRemoteStore) Upload(ctx context.Context, namespace, name string, record models.SeedBackup) error {
	const op = "upload"

	req, id := h.request(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(headerChangedFields, strings.Join(changedFields(record), ",")).
		SetBody(record).
		Put(recordPath(namespace, name))
	if err != nil {
		h.logger.Debug().Err(err).Str("request_id", id).Msg("upload request failed")
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(op, resp, h.now()); err != nil {
		h.logger.Debug().Err(err).Str("request_id", id).Int("status", resp.StatusCode()).Msg("upload rejected")
		return err
	}

	h.logger.Debug().Str("request_id", id).Str("namespace", namespace).Msg("record uploaded")
	return nil
}

// Delete implements [RemoteStore]. It sends
// DELETE /api/records/{namespace}/{name}; a 404 counts as success.
func (h *httpRemoteStore) Delete(ctx context.Context, namespace, name string) error {
	const op = "delete"

	req, id := h.request(ctx)
	resp, err := req.Delete(recordPath(namespace, name))
	if err != nil {
		h.logger.Debug().Err(err).Str("request_id", id).Msg("delete request failed")
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(op, resp, h.now()); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Debug().Str("request_id", id).Msg("record already absent")
			return nil
		}
		h.logger.Debug().Err(err).Str("request_id", id).Int("status", resp.StatusCode()).Msg("delete rejected")
		return err
	}

	h.logger.Debug().Str("request_id", id).Str("namespace", namespace).Msg("record deleted")
	return nil
}

// fetchPage retrieves one page of GET /api/records/{namespace}.
func (h *httpRemoteStore) fetchPage(ctx context.Context, namespace, cursor string) (models.SeedBackupPage, error) {
	const op = "fetch"

	var page models.SeedBackupPage
	req, id := h.request(ctx)
	req.SetQueryParam("order", "created_desc").
		SetQueryParam("limit", strconv.Itoa(h.pageSize)).
		SetResult(&page)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	resp, err := req.Get("/api/records/" + url.PathEscape(namespace))
	if err != nil {
		return page, mapTransportError(op, err)
	}
	if err = mapHTTPError(op, resp, h.now()); err != nil {
		h.logger.Debug().Err(err).Str("request_id", id).Int("status", resp.StatusCode()).Msg("fetch rejected")
		return page, err
	}

	return page, nil
}

// FetchAll implements [RemoteStore].
func (h *httpRemoteStore) FetchAll(ctx context.Context, namespace string) iter.Seq2[models.SeedBackup, error] {
	return func(yield func(models.SeedBackup, error) bool) {
		cursor := ""
		for {
			page, err := h.fetchPage(ctx, namespace, cursor)
			if err != nil {
				yield(models.SeedBackup{}, err)
				return
			}

			for _, record := range page.Records {
				if !yield(record, nil) {
					return
				}
			}

			if page.NextCursor == "" {
				return
			}
			if page.NextCursor == cursor {
				yield(models.SeedBackup{}, &RemoteError{Op: "fetch", Kind: ErrPagination})
				return
			}
			cursor = page.NextCursor
		}
	}
}

// Ping implements [RemoteStore] using GET /api/health.
func (h *httpRemoteStore) Ping(ctx context.Context) error {
	const op = "ping"

	req, _ := h.request(ctx)
	resp, err := req.Get("/api/health")
	if err != nil {
		return mapTransportError(op, err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return mapHTTPError(op, resp, h.now())
	}
	return nil
}
