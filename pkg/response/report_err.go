package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"users-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

const redacted = "[redacted]"

var (
	redactedHeaders = map[string]bool{
		"Authorization": true,
		"Cookie":        true,
	}
	redactedBodyKeys = map[string]bool{
		"password": true,
		"token":    true,
	}
)

// sendDiscordMessageAsync stops at the first failed chunk. The client logs the failure.
func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				return
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// buildInternalServerErrorDataForReportBug renders the request and failure.
// Credentials never leave the process: auth headers and secret body keys are masked.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	if c == nil || c.Request == nil {
		return ""
	}
	req := c.Request

	var bodyBytes []byte
	if req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		if err == nil {
			bodyBytes = b
			req.Body = io.NopCloser(bytes.NewReader(b))
		}
	}

	var sb strings.Builder
	sb.WriteString("================ USERS SERVICE ERROR ================\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", req.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", req.Method))
	sb.WriteString("-----------------------------------------------------\n")

	if len(req.Header) > 0 {
		keys := make([]string, 0, len(req.Header))
		for k := range req.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("Headers :\n")
		for _, k := range keys {
			v := strings.Join(req.Header[k], ", ")
			if redactedHeaders[k] {
				v = redacted
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", k, v))
		}
		sb.WriteString("-----------------------------------------------------\n")
	}

	if params := req.URL.Query().Encode(); params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		sb.WriteString("    " + redactBody(bodyBytes) + "\n")
		sb.WriteString("-----------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("=====================================================\n")
	return sb.String()
}

// redactBody masks secret keys of a JSON object. Anything else is summarized by size.
func redactBody(body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return fmt.Sprintf("<%d bytes, not json>", len(body))
	}
	for k := range obj {
		if redactedBodyKeys[k] {
			obj[k] = redacted
		}
	}
	out, err := json.MarshalIndent(obj, "    ", "  ")
	if err != nil {
		return fmt.Sprintf("<%d bytes>", len(body))
	}
	return string(out)
}
