// Package confload loads the event configuration (lanes, class overrides,
// split settings) from a YAML or JSON file, keyed by extension.
package confload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) LoadEventConfig(path string) (domain.EventConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.EventConfig{}, &domain.OpError{
			Op:   "confload.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto eventConfigDTO
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &dto)
	default:
		err = json.Unmarshal(b, &dto)
	}
	if err != nil {
		return domain.EventConfig{}, &domain.OpError{
			Op:   "confload.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, dto)
}
