package provider_fx

import (
	"context"

	"go.uber.org/fx"

	"tripweaver/internal/config"
	"tripweaver/internal/providers/amadeus"
	"tripweaver/internal/providers/gplaces"
	"tripweaver/internal/providers/liteapi"
	"tripweaver/pkg/llm"
	"tripweaver/pkg/logger"
)

var Module = fx.Provide(
	provideLiteAPI, provideAmadeus, provideGPlaces, provideComposer)

func provideLiteAPI(cfg *config.Config) *liteapi.Client {
	return liteapi.NewClient(cfg.LiteAPIKey, cfg.LiteAPIBaseURL, cfg.LiteAPIBookBaseURL)
}

func provideAmadeus(cfg *config.Config) *amadeus.Client {
	return amadeus.NewClient(cfg.AmadeusAPIKey, cfg.AmadeusAPISecret, cfg.AmadeusBaseURL)
}

func provideGPlaces(cfg *config.Config) *gplaces.Client {
	return gplaces.NewClient(cfg.GooglePlacesAPIKey)
}

func provideComposer(cfg *config.Config) llm.Composer {
	if cfg.OpenRouterAPIKey != "" {
		return llm.NewOpenRouterComposer(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterModel, cfg.AppReferer)
	}
	if cfg.GeminiAPIKey != "" {
		composer, err := llm.NewGeminiComposer(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Get().Fatal("failed to initialize Gemini composer: " + err.Error())
		}
		return composer
	}
	logger.Get().Warn("no model credentials configured, itinerary generation disabled")
	return llm.DisabledComposer{}
}
