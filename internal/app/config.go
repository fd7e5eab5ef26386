package app

import (
	"github.com/harborview/insightdeck-backend/internal/config"
	"github.com/harborview/insightdeck-backend/internal/logger"
	"github.com/harborview/insightdeck-backend/internal/utils"
)

type Config struct {
	Env      string
	HTTPAddr string
	Trend    config.TrendConfig
}

func LoadConfig(log *logger.Logger) (Config, error) {
	env := utils.GetEnv("APP_ENV", "development", log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)

	trendPath := utils.GetEnv("TREND_CONFIG_PATH", "", log)
	trendCfg, err := config.LoadTrendConfig(trendPath)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Env:      env,
		HTTPAddr: httpAddr,
		Trend:    trendCfg,
	}, nil
}
