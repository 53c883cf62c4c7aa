package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"yenboard/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks every config section against its struct tags.
func (cv *CnfValidator) Validate() error {
	sections := map[string]interface{}{
		"webServer": &cv.conf.WebServer,
		"logger":    &cv.conf.Logger,
		"rates":     &cv.conf.Rates,
	}
	for _, name := range []string{"webServer", "logger", "rates"} {
		v := validate.Struct(sections[name])
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %w", name, v.Errors)
		}
	}
	if cv.conf.Cache.Enabled && cv.conf.Cache.Size <= 0 {
		return fmt.Errorf("invalid cache config: size must be positive when cache is enabled")
	}
	return nil
}
