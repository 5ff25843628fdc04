package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// GetJSON sends a GET request. If token is non-empty, it is passed as a
// bearer token.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return do(http.MethodGet, url, nil, token)
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as
// a bearer token.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return do(http.MethodPost, url, payload, token)
}

// PutJSON sends a JSON PUT request.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return do(http.MethodPut, url, payload, token)
}

func do(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	data, _ := io.ReadAll(resp.Body)
	return resp, data, nil
}
