package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lowercase, the HTTP headers whose values are
// credentials. The header-dump middleware and the masq layer below both
// read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// Attribute keys redacted wherever they appear, in addition to
// SensitiveHeaders.
var (
	sensitiveFields   = []string{"password", "secret", "token", "access_token", "refresh_token"}
	sensitivePrefixes = []string{"secret_", "api_key"}
)

// Value shapes redacted regardless of key. The JWT pattern wants at least
// ten characters per segment so dotted version strings survive.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr returns the slog ReplaceAttr hook that masks sensitive
// attributes with masq's "[REDACTED]" marker.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
