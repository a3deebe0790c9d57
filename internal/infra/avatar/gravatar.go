// Package avatar derives profile picture URLs from email addresses.
package avatar

import (
	"crypto/md5" //nolint:gosec // Gravatar addresses images by the MD5 of the email.
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"accounts/config"
	"accounts/internal/domain/service"
)

// gravatarResolver renders Gravatar image URLs with fixed size, rating and fallback.
type gravatarResolver struct {
	baseURL string
	query   string
}

// NewGravatarResolver builds the resolver from the avatar configuration.
func NewGravatarResolver(cfg *config.Config) service.AvatarResolver {
	avatarCfg := cfg.Avatar
	if avatarCfg == nil {
		avatarCfg = &config.AvatarConfig{}
	}

	// Parameter order follows the gravatar URL scheme: s, r, d.
	params := make([]string, 0, 3)
	if avatarCfg.Size > 0 {
		params = append(params, "s="+strconv.Itoa(avatarCfg.Size))
	}
	if avatarCfg.Rating != "" {
		params = append(params, "r="+url.QueryEscape(avatarCfg.Rating))
	}
	if avatarCfg.Default != "" {
		params = append(params, "d="+url.QueryEscape(avatarCfg.Default))
	}

	return &gravatarResolver{
		baseURL: strings.TrimSuffix(avatarCfg.BaseURL, "/"),
		query:   strings.Join(params, "&"),
	}
}

// URL returns the avatar address for email.
// Gravatar hashes the trimmed, lowercased address; the stored email itself is untouched.
func (r *gravatarResolver) URL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec

	avatarURL := r.baseURL + "/" + hex.EncodeToString(sum[:])
	if r.query != "" {
		avatarURL += "?" + r.query
	}

	return avatarURL
}
