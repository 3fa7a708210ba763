package webhook_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/config"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	provideWebhookService, provideWebhookController)

func provideWebhookService(bookingRepo repositories.BookingRepository) services.WebhookServiceInterface {
	return services.NewWebhookService(bookingRepo)
}

func provideWebhookController(webhookService services.WebhookServiceInterface, cfg *config.Config) *controllers.WebhookController {
	return controllers.NewWebhookController(webhookService, cfg.LiteAPIWebhookToken)
}
