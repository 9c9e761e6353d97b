package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the server config.
type StructuredJSONConfig struct {
	App struct {
		BaseURL              string   `json:"base_url"`
		FrontendURL          string   `json:"frontend_url"`
		VerifiedRedirectPath string   `json:"verified_redirect_path"`
		ResetTokenTTL        Duration `json:"reset_token_ttl"`
		FreeDailyMessages    int      `json:"free_daily_messages"`
		LogLevel             string   `json:"log_level"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Identity struct {
		URL            string   `json:"url"`
		ServiceRoleKey string   `json:"service_role_key"`
		AnonKey        string   `json:"anon_key"`
		JWTSecret      string   `json:"jwt_secret"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"identity,omitempty"`

	Email struct {
		ResendAPIKey   string   `json:"resend_api_key"`
		ResendURL      string   `json:"resend_url"`
		From           string   `json:"from"`
		SMTPHost       string   `json:"smtp_host"`
		SMTPPort       int      `json:"smtp_port"`
		SMTPUser       string   `json:"smtp_user"`
		SMTPPassword   string   `json:"smtp_password"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"email,omitempty"`

	Payments struct {
		StripeSecretKey     string `json:"stripe_secret_key"`
		StripeWebhookSecret string `json:"stripe_webhook_secret"`
		PremiumPriceID      string `json:"premium_price_id"`
		ProPriceID          string `json:"pro_price_id"`
	} `json:"payments,omitempty"`

	Coach struct {
		OpenAIAPIKey string  `json:"openai_api_key"`
		OpenAIURL    string  `json:"openai_url"`
		Model        string  `json:"model"`
		MaxTokens    int     `json:"max_tokens"`
		Temperature  float32 `json:"temperature"`
	} `json:"coach,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			BaseURL:              jsonCfg.App.BaseURL,
			FrontendURL:          jsonCfg.App.FrontendURL,
			VerifiedRedirectPath: jsonCfg.App.VerifiedRedirectPath,
			ResetTokenTTL:        time.Duration(jsonCfg.App.ResetTokenTTL),
			FreeDailyMessages:    jsonCfg.App.FreeDailyMessages,
			LogLevel:             jsonCfg.App.LogLevel,
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Identity: Identity{
			URL:            jsonCfg.Identity.URL,
			ServiceRoleKey: jsonCfg.Identity.ServiceRoleKey,
			AnonKey:        jsonCfg.Identity.AnonKey,
			JWTSecret:      jsonCfg.Identity.JWTSecret,
			RequestTimeout: time.Duration(jsonCfg.Identity.RequestTimeout),
		},
		Email: Email{
			ResendAPIKey:   jsonCfg.Email.ResendAPIKey,
			ResendURL:      jsonCfg.Email.ResendURL,
			From:           jsonCfg.Email.From,
			SMTPHost:       jsonCfg.Email.SMTPHost,
			SMTPPort:       jsonCfg.Email.SMTPPort,
			SMTPUser:       jsonCfg.Email.SMTPUser,
			SMTPPassword:   jsonCfg.Email.SMTPPassword,
			RequestTimeout: time.Duration(jsonCfg.Email.RequestTimeout),
		},
		Payments: Payments{
			StripeSecretKey:     jsonCfg.Payments.StripeSecretKey,
			StripeWebhookSecret: jsonCfg.Payments.StripeWebhookSecret,
			PremiumPriceID:      jsonCfg.Payments.PremiumPriceID,
			ProPriceID:          jsonCfg.Payments.ProPriceID,
		},
		Coach: Coach{
			OpenAIAPIKey: jsonCfg.Coach.OpenAIAPIKey,
			OpenAIURL:    jsonCfg.Coach.OpenAIURL,
			Model:        jsonCfg.Coach.Model,
			MaxTokens:    jsonCfg.Coach.MaxTokens,
			Temperature:  jsonCfg.Coach.Temperature,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
