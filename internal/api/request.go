package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, body io.Reader, result io.Writer) error {
	url := c.baseURL.JoinPath(path)

	log.Debug("new client request", "method", method, "path", url.Path, "host", url.Host)

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: errors.WithStack(err)}
	}

	for k, v := range c.header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: errors.WithStack(err)}
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, res.Body)
		return &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Err:        errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status),
		}
	}

	if result == nil {
		result = io.Discard
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return &TransportError{Method: method, Path: path, StatusCode: res.StatusCode, Err: errors.WithStack(err)}
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, body, &buff); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return &TransportError{Method: method, Path: path, Err: errors.Wrap(err, "could not decode response body")}
	}

	return nil
}
