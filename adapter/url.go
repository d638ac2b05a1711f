package adapter

import (
	"net/url"
	"strings"
)

// buildRequestURL appends suffix to base unless base already ends with it.
func buildRequestURL(base, suffix string) string {
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		base = strings.TrimRight(base, "/")
		if strings.HasSuffix(base, suffix) {
			return base
		}
		return base + suffix
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, suffix) {
		parsed.Path = path + suffix
	}
	return parsed.String()
}

func resolveBase(config *ProviderConfig, adaptorBase, fallback string) string {
	base := strings.TrimRight(config.BaseURL, "/")
	if base == "" {
		base = strings.TrimRight(adaptorBase, "/")
	}
	if base == "" {
		base = fallback
	}
	return base
}
