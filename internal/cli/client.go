// Package cli is a thin JSON client for the FinSim API, used by the
// cmd/finsim command tree.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finsim/internal/questions"
	"finsim/internal/session"
	"finsim/internal/sim"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) CreateSession(ctx context.Context, companyNames []string) (session.Session, error) {
	var out session.Session
	err := c.jsonRequest(ctx, http.MethodPost, "/sessions", map[string]any{
		"company_names": companyNames,
	}, &out)
	return out, err
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (session.Session, error) {
	var out session.Session
	err := c.jsonRequest(ctx, http.MethodGet, "/sessions/"+url.PathEscape(sessionID), nil, &out)
	return out, err
}

func (c *Client) GetQuestion(ctx context.Context, questionID string) (questions.Question, error) {
	var out questions.Question
	err := c.jsonRequest(ctx, http.MethodGet, "/questions/"+url.PathEscape(questionID), nil, &out)
	return out, err
}

func (c *Client) SubmitDecision(ctx context.Context, sessionID, companyID string, d sim.Decision) (session.Session, error) {
	var out session.Session
	err := c.jsonRequest(ctx, http.MethodPost, "/sessions/"+url.PathEscape(sessionID)+"/decisions", map[string]any{
		"company_id": companyID,
		"production": d.Production,
		"price":      d.Price,
		"marketing":  d.Marketing,
	}, &out)
	return out, err
}

func (c *Client) SubmitAnswer(ctx context.Context, sessionID, companyID, optionID string) (session.Session, error) {
	var out session.Session
	err := c.jsonRequest(ctx, http.MethodPost, "/sessions/"+url.PathEscape(sessionID)+"/answer", map[string]any{
		"company_id": companyID,
		"option_id":  optionID,
	}, &out)
	return out, err
}

func (c *Client) CloseQuarter(ctx context.Context, sessionID string) (session.Session, error) {
	var out session.Session
	err := c.jsonRequest(ctx, http.MethodPost, "/sessions/"+url.PathEscape(sessionID)+"/close_quarter", nil, &out)
	return out, err
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
