package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// DefaultBodyMaxChars bounds how much body text is handed to the model.
const DefaultBodyMaxChars = 20000

// GetMessageBody fetches and extracts a best-effort text body, preferring
// text/plain parts, then rendered text/html, then the snippet. Only used
// for representative samples and extraction, never during ingestion.
func (c *Client) GetMessageBody(ctx context.Context, messageID string, maxChars int) (string, error) {
	if maxChars <= 0 {
		maxChars = DefaultBodyMaxChars
	}

	q := url.Values{}
	q.Set("format", "full")

	var raw rawMessage
	path := fmt.Sprintf("/users/%s/messages/%s", url.PathEscape(c.userID), url.PathEscape(messageID))
	if err := c.getFull(ctx, path, q, &raw); err != nil {
		return "", fmt.Errorf("failed to fetch body of %s: %w", messageID, err)
	}

	var plain, htmlParts []string
	walkParts(&raw.Payload, &plain, &htmlParts)

	if len(plain) > 0 {
		return truncate(strings.TrimSpace(strings.Join(plain, "\n\n")), maxChars), nil
	}
	if len(htmlParts) > 0 {
		if rendered := htmlToText(strings.Join(htmlParts, "\n\n")); rendered != "" {
			return truncate(rendered, maxChars), nil
		}
	}
	return truncate(strings.TrimSpace(raw.Snippet), maxChars), nil
}

func walkParts(part *rawPart, plain, htmlParts *[]string) {
	mime := strings.ToLower(part.MimeType)
	if part.Body.Data != "" {
		if decoded, err := decodeBase64URL(part.Body.Data); err == nil {
			switch {
			case strings.HasPrefix(mime, "text/plain"):
				*plain = append(*plain, decoded)
			case strings.HasPrefix(mime, "text/html"):
				*htmlParts = append(*htmlParts, decoded)
			}
		}
	}
	for i := range part.Parts {
		walkParts(&part.Parts[i], plain, htmlParts)
	}
}

func decodeBase64URL(data string) (string, error) {
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

var (
	scriptRe     = regexp.MustCompile(`(?is)<\s*script[^>]*>.*?<\s*/\s*script\s*>`)
	styleRe      = regexp.MustCompile(`(?is)<\s*style[^>]*>.*?<\s*/\s*style\s*>`)
	brRe         = regexp.MustCompile(`(?i)<\s*br\s*/?\s*>`)
	pCloseRe     = regexp.MustCompile(`(?i)</\s*p\s*>`)
	divCloseRe   = regexp.MustCompile(`(?i)</\s*div\s*>`)
	liCloseRe    = regexp.MustCompile(`(?i)</\s*li\s*>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	horizWSRe    = regexp.MustCompile(`[\t\r\f\v]+`)
	nlSpaceRe    = regexp.MustCompile(`\n\s+`)
	multiNLRe    = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe = regexp.MustCompile(` {2,}`)
)

// htmlToText is a lightweight HTML to plain text conversion tuned for
// email bodies; good enough for prompt input, not for display.
func htmlToText(s string) string {
	s = scriptRe.ReplaceAllString(s, " ")
	s = styleRe.ReplaceAllString(s, " ")
	s = brRe.ReplaceAllString(s, "\n")
	s = pCloseRe.ReplaceAllString(s, "\n\n")
	s = divCloseRe.ReplaceAllString(s, "\n")
	s = liCloseRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = horizWSRe.ReplaceAllString(s, " ")
	s = nlSpaceRe.ReplaceAllString(s, "\n")
	s = multiNLRe.ReplaceAllString(s, "\n\n")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func truncate(s string, maxChars int) string {
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars]
}
