package linemux

import (
	"strconv"
)

// ApplyOverride applies string key-value overrides to the configuration.
// Each override should be in the format "key=value". Overrides are applied
// before the configuration is handed to New; a running logger cannot be
// reconfigured.
//
// Example:
//
//	cfg := linemux.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "target=stderr",
//	    "buffer_size=8192",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return nil
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Sink selection
	case "target":
		cfg.Target = value

	// Rendering
	case "time_layout":
		cfg.TimeLayout = value
	case "max_render_depth":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_render_depth '%s': %w", value, err)
		}
		cfg.MaxRenderDepth = intVal
	case "buffer_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for buffer_size '%s': %w", value, err)
		}
		cfg.BufferSize = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
