package mail

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64(s string) string {
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(s))
}

func TestWalkPartsMultipart(t *testing.T) {
	tree := gmailPart{
		MimeType: "multipart/mixed",
		Parts: []gmailPart{
			{
				MimeType: "multipart/alternative",
				Parts: []gmailPart{
					{MimeType: "text/plain", Body: gmailBody{Data: b64("plain body")}},
					{MimeType: "text/html", Body: gmailBody{Data: b64("<p>html body</p>")}},
				},
			},
			{
				MimeType: "application/pdf",
				Filename: "invoice.pdf",
				Body:     gmailBody{AttachmentID: "att-1", Size: 2048},
			},
		},
	}

	plain, html, attachments := walkParts(tree)
	assert.Equal(t, "plain body", plain)
	assert.Equal(t, "<p>html body</p>", html)
	require.Len(t, attachments, 1)
	assert.Equal(t, "att-1", attachments[0].ID)
	assert.Equal(t, "invoice.pdf", attachments[0].Filename)
	assert.Equal(t, int64(2048), attachments[0].Size)
}

func TestWalkPartsSinglePart(t *testing.T) {
	plain, html, attachments := walkParts(gmailPart{
		MimeType: "text/plain",
		Body:     gmailBody{Data: b64("hello")},
	})
	assert.Equal(t, "hello", plain)
	assert.Empty(t, html)
	assert.Empty(t, attachments)
}

func TestWalkPartsKeepsFirstBody(t *testing.T) {
	tree := gmailPart{
		MimeType: "multipart/mixed",
		Parts: []gmailPart{
			{MimeType: "text/plain", Body: gmailBody{Data: b64("first")}},
			{MimeType: "text/plain", Body: gmailBody{Data: b64("second")}},
		},
	}
	plain, _, _ := walkParts(tree)
	assert.Equal(t, "first", plain)
}

func TestDecodeBody(t *testing.T) {
	assert.Equal(t, "hello", decodeBody(b64("hello")))
	assert.Empty(t, decodeBody(""))
	assert.Empty(t, decodeBody("not base64!!!"))
}

func TestSplitAddresses(t *testing.T) {
	assert.Equal(t,
		[]string{"jane@customer.example", "Joe <joe@customer.example>"},
		splitAddresses("jane@customer.example, Joe <joe@customer.example>"))
	assert.Empty(t, splitAddresses(" , "))
}

func TestParseMailDate(t *testing.T) {
	got, err := parseMailDate("Mon, 24 Aug 2026 10:30:00 +0200")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 10, 30, 0, 0, got.Location()), got)

	_, err = parseMailDate("yesterday")
	assert.Error(t, err)
}
