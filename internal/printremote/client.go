// Package printremote talks to the network-attached label printer. The
// remote protocol is a single authenticated POST; printing is always issued
// after the inventory mutation committed, so a printer failure never rolls
// anything back.
package printremote

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"clonestore/internal/model"
)

// ErrUnreachable marks a printer host that could not be contacted at all,
// as opposed to one that answered and misbehaved.
var ErrUnreachable = errors.New("printer unreachable")

// Error reports a printer that answered but refused or garbled the request.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "print remote: " + e.Reason }

// macWindow buckets the MAC timestamp; the remote accepts the current and
// adjacent windows, which bounds replay to about a minute.
const macWindow = 30 * time.Second

// Client is a stateless handle to one registered printer. It is rebuilt from
// the stored registration on every printing call; there is no cached module
// state.
type Client struct {
	url          string
	secret       string
	linkTemplate string
	http         *http.Client

	// now is overridable in tests to pin the MAC window.
	now func() time.Time
}

// New creates a client for the printer at rawURL. linkTemplate is the
// frontend URL pattern the QR deep link is derived from.
func New(rawURL, secret, linkTemplate string) (*Client, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, &Error{Reason: "invalid printer URL"}
	}
	return &Client{
		url:          rawURL,
		secret:       secret,
		linkTemplate: linkTemplate,
		http:         &http.Client{Timeout: 10 * time.Second},
		now:          time.Now,
	}, nil
}

type statusResponse struct {
	Type   string `json:"type"`
	Online bool   `json:"online"`
}

// Status probes the remote and reports whether it is online.
func (c *Client) Status(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, &Error{Reason: err.Error()}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("status probe: %w", ErrUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, &Error{Reason: "network request got malformed response"}
	}
	if status.Type != "clonestore-printer" {
		return false, &Error{Reason: "specified printer URL is not a clonestore printer"}
	}
	return status.Online, nil
}

type printResponse struct {
	Success    bool   `json:"success"`
	StatusText string `json:"statustext"`
}

// Print sends one label job for the given entity. host carries optional
// host-organism info for plasmid labels.
func (c *Client) Print(ctx context.Context, e model.Entity, copies int, host string) error {
	if copies < 1 {
		copies = 1
	}
	link := model.DeepLink(c.linkTemplate, e.TypeTag(), e.EntityID())
	text := e.LabelText(host)

	form := url.Values{}
	form.Set("mac", c.mac(link, text, copies))
	form.Set("text", text)
	form.Set("qrdata", link)
	form.Set("copies", strconv.Itoa(copies))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return &Error{Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("print: %w", ErrUnreachable)
	}
	defer func() { _ = resp.Body.Close() }()

	var result printResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &Error{Reason: "network request got malformed response"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Success {
		reason := result.StatusText
		if reason == "" {
			reason = "printing failed with status " + resp.Status
		}
		return &Error{Reason: reason}
	}
	return nil
}

// mac authenticates link, text and copy count within the current time
// window using the shared secret.
func (c *Client) mac(link, text string, copies int) string {
	window := c.now().Unix() / int64(macWindow.Seconds())
	h := hmac.New(sha256.New, []byte(c.secret))
	fmt.Fprintf(h, "%s|%s|%d|%d", link, text, copies, window)
	return hex.EncodeToString(h.Sum(nil))
}
