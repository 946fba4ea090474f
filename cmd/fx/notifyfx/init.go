package notifyfx

import (
	"os"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"

	"wanderlust/internal/services"
)

var Module = fx.Provide(provideLogger, provideNotifier)

func provideLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wanderlust",
	})
}

func provideNotifier(logger *log.Logger) services.Notifier {
	return services.NewLogNotifier(logger)
}
