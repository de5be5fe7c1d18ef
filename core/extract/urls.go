package extract

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// staticExtensions are file extensions that never hold an HTML page.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// ValidateURL checks that rawURL is an absolute http(s) URL that can
// point at a web page.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	if s := strings.ToLower(parsed.Scheme); s != "http" && s != "https" {
		return fmt.Errorf("invalid URL: %s (only http and https are supported)", rawURL)
	}
	if IsStaticAsset(rawURL) {
		return fmt.Errorf("invalid URL: %s (points to a %s file, not a web page)", rawURL, path.Ext(parsed.Path))
	}
	return nil
}

// IsStaticAsset reports whether rawURL points to a static asset (image,
// stylesheet, archive, document...).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return staticExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// TrimFragment drops the #fragment, which servers never see.
func TrimFragment(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Fragment == "" {
		return rawURL
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String()
}
