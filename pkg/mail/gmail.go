package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/models"
)

const gmailBase = "https://gmail.googleapis.com/gmail/v1/users/me"

// consumedLabel is attached to messages the poller has enqueued, so they
// stop matching ListNew. The label must exist in the mailbox.
const consumedLabel = "shipdesk-ingested"

// GmailSource reads a Gmail mailbox over the REST API with an OAuth2
// token. Messages carrying the configured label are listed; consumption
// adds a marker label.
type GmailSource struct {
	httpClient *http.Client
	label      string
	log        *slog.Logger

	labelIDs map[string]string
}

// NewGmailSource builds the source from configuration. Credentials JSON
// and the refresh token come from the named environment variables.
func NewGmailSource(ctx context.Context, cfg *config.GmailConfig) (*GmailSource, error) {
	credsJSON := os.Getenv(cfg.CredentialsEnv)
	if credsJSON == "" {
		return nil, fmt.Errorf("gmail credentials env %s is empty", cfg.CredentialsEnv)
	}
	oauthCfg, err := google.ConfigFromJSON([]byte(credsJSON), "https://www.googleapis.com/auth/gmail.modify")
	if err != nil {
		return nil, fmt.Errorf("parse gmail credentials: %w", err)
	}

	tokenJSON := os.Getenv(cfg.TokenEnv)
	if tokenJSON == "" {
		return nil, fmt.Errorf("gmail token env %s is empty", cfg.TokenEnv)
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(tokenJSON), &token); err != nil {
		return nil, fmt.Errorf("parse gmail token: %w", err)
	}

	label := cfg.Label
	if label == "" {
		label = "INBOX"
	}
	return &GmailSource{
		httpClient: oauthCfg.Client(ctx, &token),
		label:      label,
		log:        slog.Default().With("component", "gmail-source"),
	}, nil
}

// ListNew returns labeled messages not yet marked consumed.
func (g *GmailSource) ListNew(ctx context.Context) ([]models.InboundEmail, error) {
	query := fmt.Sprintf("label:%s -label:%s", g.label, consumedLabel)
	var listResp struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := g.get(ctx, "/messages?maxResults=50&q="+url.QueryEscape(query), &listResp); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]models.InboundEmail, 0, len(listResp.Messages))
	for _, m := range listResp.Messages {
		msg, err := g.fetch(ctx, m.ID)
		if err != nil {
			g.log.Warn("Failed to fetch message", "id", m.ID, "error", err)
			continue
		}
		out = append(out, *msg)
	}
	// Gmail lists newest first; the queue wants oldest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// MarkConsumed adds the marker label.
func (g *GmailSource) MarkConsumed(ctx context.Context, sourceMessageID string) error {
	labelID, err := g.labelID(ctx, consumedLabel)
	if err != nil {
		return err
	}
	body := map[string]any{"addLabelIds": []string{labelID}}
	return g.post(ctx, "/messages/"+url.PathEscape(sourceMessageID)+"/modify", body, nil)
}

// FetchAttachment downloads one attachment body.
func (g *GmailSource) FetchAttachment(ctx context.Context, sourceMessageID, attachmentID string) ([]byte, error) {
	var resp struct {
		Data string `json:"data"`
	}
	path := fmt.Sprintf("/messages/%s/attachments/%s",
		url.PathEscape(sourceMessageID), url.PathEscape(attachmentID))
	if err := g.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch attachment: %w", err)
	}
	data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return data, nil
}

// gmailMessage is the slice of the API message resource we read.
type gmailMessage struct {
	ID           string `json:"id"`
	ThreadID     string `json:"threadId"`
	InternalDate string `json:"internalDate"`
	Payload      struct {
		Headers []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"headers"`
		MimeType string      `json:"mimeType"`
		Body     gmailBody   `json:"body"`
		Parts    []gmailPart `json:"parts"`
	} `json:"payload"`
}

type gmailBody struct {
	Data         string `json:"data"`
	AttachmentID string `json:"attachmentId"`
	Size         int64  `json:"size"`
}

type gmailPart struct {
	MimeType string      `json:"mimeType"`
	Filename string      `json:"filename"`
	Body     gmailBody   `json:"body"`
	Parts    []gmailPart `json:"parts"`
}

func (g *GmailSource) fetch(ctx context.Context, id string) (*models.InboundEmail, error) {
	var msg gmailMessage
	if err := g.get(ctx, "/messages/"+url.PathEscape(id)+"?format=full", &msg); err != nil {
		return nil, err
	}

	out := &models.InboundEmail{
		SourceMessageID: msg.ID,
		ThreadID:        msg.ThreadID,
	}
	for _, h := range msg.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			out.From = h.Value
		case "to":
			out.To = splitAddresses(h.Value)
		case "cc":
			out.Cc = splitAddresses(h.Value)
		case "subject":
			out.Subject = h.Value
		case "date":
			if t, err := parseMailDate(h.Value); err == nil {
				out.ReceivedAt = t
			}
		}
	}

	plain, html, attachments := walkParts(gmailPart{
		MimeType: msg.Payload.MimeType,
		Body:     msg.Payload.Body,
		Parts:    msg.Payload.Parts,
	})
	out.BodyPlain = plain
	out.BodyHTML = html
	out.Attachments = attachments
	return out, nil
}

// walkParts flattens a MIME tree into plain text, HTML, and attachment
// references.
func walkParts(part gmailPart) (plain, html string, attachments []models.Attachment) {
	if part.Filename != "" && part.Body.AttachmentID != "" {
		return "", "", []models.Attachment{{
			ID:       part.Body.AttachmentID,
			Filename: part.Filename,
			MimeType: part.MimeType,
			Size:     part.Body.Size,
		}}
	}
	switch part.MimeType {
	case "text/plain":
		return decodeBody(part.Body.Data), "", nil
	case "text/html":
		return "", decodeBody(part.Body.Data), nil
	}
	for _, child := range part.Parts {
		p, h, a := walkParts(child)
		if plain == "" {
			plain = p
		}
		if html == "" {
			html = h
		}
		attachments = append(attachments, a...)
	}
	return plain, html, attachments
}

func decodeBody(data string) string {
	if data == "" {
		return ""
	}
	b, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(data)
	if err != nil {
		return ""
	}
	return string(b)
}

func splitAddresses(header string) []string {
	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseMailDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// labelID resolves and caches the id of a label by name.
func (g *GmailSource) labelID(ctx context.Context, name string) (string, error) {
	if id, ok := g.labelIDs[name]; ok {
		return id, nil
	}
	var resp struct {
		Labels []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"labels"`
	}
	if err := g.get(ctx, "/labels", &resp); err != nil {
		return "", fmt.Errorf("list labels: %w", err)
	}
	if g.labelIDs == nil {
		g.labelIDs = make(map[string]string)
	}
	for _, l := range resp.Labels {
		g.labelIDs[l.Name] = l.ID
	}
	id, ok := g.labelIDs[name]
	if !ok {
		return "", fmt.Errorf("label %q not found in mailbox", name)
	}
	return id, nil
}

func (g *GmailSource) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gmailBase+path, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

func (g *GmailSource) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailBase+path, strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *GmailSource) do(req *http.Request, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gmail api returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
