// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

type Config struct {
	LevelCap          int    `env:"LEVEL_CAP"           envDefault:"80"                  envDocs:"maximum achievable job level, configurations where every job is at or above it are skipped"`
	XivapiBaseURL     string `env:"XIVAPI_BASE_URL"     envDefault:"https://xivapi.com"  envDocs:"base url of the character data provider"`
	HTTPTimeoutSecond int    `env:"HTTP_TIMEOUT_SECOND" envDefault:"25"                  envDocs:"timeout of a single provider request in second"`
	HTTPRetryAttempts int    `env:"HTTP_RETRY_ATTEMPTS" envDefault:"3"                   envDocs:"number of attempts for a provider request (1 means no retry)"`
	CacheTTLSecond    int    `env:"CACHE_TTL_SECOND"    envDefault:"600"                 envDocs:"how long server list and character data are cached in second"`
	LogLevel          string `env:"LOG_LEVEL"           envDefault:"info"                envDocs:"logrus level (trace, debug, info, warn, error)"`
	ZipkinEndpoint    string `env:"ZIPKIN_ENDPOINT"     envDefault:""                    envDocs:"zipkin collector url, tracing is exported only when set"`
	MetricsAddr       string `env:"METRICS_ADDR"        envDefault:""                    envDocs:"address to serve prometheus metrics on, disabled when empty"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	configuration := &Config{}
	if err := env.Parse(configuration); err != nil {
		return nil, err
	}
	return configuration, nil
}
