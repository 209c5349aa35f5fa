package ports

import "github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"

// ConfigLoader loads and validates an event configuration file.
type ConfigLoader interface {
	LoadEventConfig(path string) (domain.EventConfig, error)
}
