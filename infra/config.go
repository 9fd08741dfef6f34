package infra

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type HTTPConfig struct {
	Port int `envconfig:"HTTP_PORT" default:"8080"`
}

type MongoDbConfig struct {
	ConnectionUrl          string `envconfig:"MONGODB_URL" required:"true"`
	DatabaseName           string `envconfig:"MONGODB_NAME" required:"true"`
	SnapshotCollectionName string `envconfig:"MONGODB_SNAPSHOT_COLLECTION_NAME" default:"chart_snapshots"`
	TimeOut                int    `envconfig:"MONGODB_TIMEOUT" default:"10"`
}

type CentrifugoConfig struct {
	APIAddr      string `envconfig:"CENTRIFUGO_API_ADDR" required:"true"`
	APIKey       string `envconfig:"CENTRIFUGO_API_KEY" required:"true"`
	WSAddr       string `envconfig:"CENTRIFUGO_WS_ADDR" required:"true"`
	SignTokenKey string `envconfig:"CENTRIFUGO_TOKEN_KEY"`
	Debug        bool   `envconfig:"CENTRIFUGO_DEBUG"`
}

type FeedConfig struct {
	ServerURL    string `envconfig:"FEED_SERVER_URL" required:"true"`
	Token        string `envconfig:"FEED_TOKEN"`
	Symbol       string `envconfig:"FEED_SYMBOL" default:"BTC-USDT"`
	Resolution   string `envconfig:"FEED_RESOLUTION" default:"60"`
	PollInterval int    `envconfig:"FEED_POLL_INTERVAL" default:"15"`
}

type ChartConfig struct {
	ViewportWidth int `envconfig:"CHART_VIEWPORT_WIDTH" default:"1280"`
}

type Config struct {
	HttpConfig       HTTPConfig
	MongoDbConfig    MongoDbConfig
	CentrifugoConfig CentrifugoConfig
	FeedConfig       FeedConfig
	ChartConfig      ChartConfig
}

func SetConfig(ctx context.Context, configPath string) Config {
	err := godotenv.Load(configPath)
	if err != nil {
		panic(err)
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Println("msg", "failed to load configuration", "err", err)
		panic(err)
	}

	return cfg
}

func GetContext() context.Context {
	return context.Background()
}
