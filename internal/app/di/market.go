// Package di provides dependency injection factories for creating application components.
package di

import (
	"dexdata_backend/internal/platform/externalapi/tradingstrategy"
	infrahttp "dexdata_backend/internal/platform/http"
)

// NewMarket creates a fully configured TradingStrategyMarket with HTTP client.
func NewMarket() *tradingstrategy.TradingStrategyMarket {
	cfg := tradingstrategy.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return tradingstrategy.NewTradingStrategyMarket(cfg, httpClient)
}
