// Package pagination normalizes list request paging for riskodds services.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrInvalidPageToken indicates a page token that was not issued by EncodeToken.
var ErrInvalidPageToken = errors.New("invalid page token")

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies the default for unset sizes and caps at Max.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// EncodeToken turns the last key of a page into an opaque token.
// An empty key yields an empty token, meaning no further pages.
func EncodeToken(lastKey string) string {
	if lastKey == "" {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(lastKey))
}

// DecodeToken reverses EncodeToken. An empty token starts from the beginning.
func DecodeToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageToken, token)
	}
	return string(raw), nil
}
