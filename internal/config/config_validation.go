// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
	"time"
)

const (
	defaultFrontendURL          = "https://www.fitlyai.com"
	defaultVerifiedRedirectPath = "/?verified=1"
	defaultResetTokenTTL        = time.Hour
	defaultFreeDailyMessages    = 10
	defaultRequestTimeout       = 30 * time.Second
	defaultOutboundTimeout      = 10 * time.Second
	defaultEmailFrom            = "FitlyAI <no-reply@fitlyai.com>"
	defaultResendURL            = "https://api.resend.com"
	defaultSMTPPort             = 587
	defaultCoachModel           = "gpt-4o"
	defaultCoachMaxTokens       = 1000
	defaultCoachTemperature     = 0.7
)

// applyDefaults fills optional settings that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.FrontendURL == "" {
		cfg.App.FrontendURL = defaultFrontendURL
	}
	cfg.App.FrontendURL = strings.TrimRight(cfg.App.FrontendURL, "/")
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")

	if cfg.App.VerifiedRedirectPath == "" {
		cfg.App.VerifiedRedirectPath = defaultVerifiedRedirectPath
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = defaultResetTokenTTL
	}
	if cfg.App.FreeDailyMessages == 0 {
		cfg.App.FreeDailyMessages = defaultFreeDailyMessages
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Identity.RequestTimeout == 0 {
		cfg.Identity.RequestTimeout = defaultOutboundTimeout
	}
	if cfg.Identity.AnonKey == "" {
		cfg.Identity.AnonKey = cfg.Identity.ServiceRoleKey
	}

	if cfg.Email.From == "" {
		cfg.Email.From = defaultEmailFrom
	}
	if cfg.Email.ResendURL == "" {
		cfg.Email.ResendURL = defaultResendURL
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = defaultSMTPPort
	}
	if cfg.Email.RequestTimeout == 0 {
		cfg.Email.RequestTimeout = defaultOutboundTimeout
	}

	if cfg.Coach.Model == "" {
		cfg.Coach.Model = defaultCoachModel
	}
	if cfg.Coach.MaxTokens == 0 {
		cfg.Coach.MaxTokens = defaultCoachMaxTokens
	}
	if cfg.Coach.Temperature == 0 {
		cfg.Coach.Temperature = defaultCoachTemperature
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// the gRPC listener only carries health checks
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Identity.URL == "" || cfg.Identity.ServiceRoleKey == "" {
		return ErrInvalidIdentityConfigs
	}
	if _, err := url.ParseRequestURI(cfg.Identity.URL); err != nil {
		return ErrInvalidIdentityConfigs
	}

	if cfg.App.BaseURL != "" {
		if _, err := url.ParseRequestURI(cfg.App.BaseURL); err != nil {
			return ErrInvalidAppConfigs
		}
	}
	if cfg.App.FreeDailyMessages < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
