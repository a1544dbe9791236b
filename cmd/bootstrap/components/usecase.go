package components

import (
	"phantom-mask/internal/infra/captchaimg"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/config"
	"phantom-mask/internal/usecase"
	"phantom-mask/internal/usecase/commands"
	"phantom-mask/internal/usecase/queries"
	"phantom-mask/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	func(cfg config.Config) commands.CaptchaRenderer {
		return captchaimg.NewRenderer(cfg.Captcha)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPurchaseCommands,
		commands.NewAuthCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.InventoryCommands {
			return commands.NewInventoryCommands(uow, clk, cfg.Batch.Size)
		},
		func(uow shared.UnitOfWork, renderer commands.CaptchaRenderer, clk clock.Clock, cfg config.Config) commands.CaptchaCommands {
			return commands.NewCaptchaCommands(uow, renderer, clk, cfg.Captcha.TTL)
		},
		func(c commands.CaptchaCommands) commands.CaptchaVerifier {
			return c
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPharmacyQueries,
		queries.NewInventoryQueries,
		queries.NewMemberQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
