package components

import (
	"phantom-mask/internal/handler"
	"phantom-mask/internal/handler/api"
	"phantom-mask/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCaptchaHandler,
		api.NewPharmacyHandler,
		api.NewInventoryHandler,
		api.NewMemberHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
