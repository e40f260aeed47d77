// Package config loads runtime configuration from the environment. In
// production the Telegram token is fetched from AWS SSM instead of env.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const tokenSSMParameter = "/chalisa-bot/prod/telegram-token"

type Config struct {
	Dev           bool    `envconfig:"DEV" default:"false"`
	DBPath        string  `envconfig:"DB_PATH" default:"data/chalisa-bot.db"`
	CatalogPath   string  `envconfig:"CATALOG_PATH" default:"data/catalog.yaml"`
	DeliveryTime  string  `envconfig:"DELIVERY_TIME" default:"07:00"`
	Timezone      string  `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
	SendRate      float64 `envconfig:"SEND_RATE" default:"25"`
	AdminID       int64   `envconfig:"ADMIN_ID" required:"true"`
	TelegramToken string  `envconfig:"TELEGRAM_TOKEN"`
}

func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev {
		return res, nil
	}
	res.TelegramToken, err = getSSMToken(ctx)
	if err != nil {
		return nil, err
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(tokenSSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
