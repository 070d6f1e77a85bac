// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	groupstore "github.com/codeit-toyproject-five/zogakzip/internal/app/store/groups"
	"github.com/codeit-toyproject-five/zogakzip/internal/app/system/tasks"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// taskRunner is created in Startup and stopped in Shutdown.
var taskRunner *tasks.Runner

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// It prepares the upload directory and starts the scheduled badge sweep.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := os.MkdirAll(appCfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	taskRunner = tasks.NewRunner(logger)
	if err := taskRunner.Add(tasks.AnniversaryBadgeJob(groupstore.New(deps.MongoDatabase), logger)); err != nil {
		return fmt.Errorf("register anniversary badge job: %w", err)
	}
	taskRunner.Start()

	return nil
}
