package orchestration

import (
	"github.com/abray/logbench/internal/config"
	"github.com/abray/logbench/internal/strategy"
)

// GetStrategiesToRun determines which strategies should be executed based on
// the configuration. Returns strategies in the registry's canonical execution
// order for consistent, reproducible behavior.
//
// Parameters:
//   - cfg: The application configuration containing the strategy selection.
//   - factory: The strategy factory to retrieve implementations from.
//
// Returns:
//   - []strategy.Strategy: A slice of strategies to execute.
func GetStrategiesToRun(cfg config.AppConfig, factory strategy.Factory) []strategy.Strategy {
	if cfg.Strategy == config.StrategyAll {
		return factory.GetAll()
	}
	if s, err := factory.Get(cfg.Strategy); err == nil {
		return []strategy.Strategy{s}
	}
	return nil
}
