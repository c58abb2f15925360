package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/stylesettings"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ErrUnknownKey is returned for keys that were never registered.
var ErrUnknownKey = errors.New("unknown config key")

var validators = map[string]func(any) error{
	key.VaultPath: func(v any) error {
		path := v.(string)
		ok, err := filesystem.API().DirExists(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("vault %s is not a directory", path)
		}
		return nil
	},
	key.ThemeMode: func(v any) error {
		_, err := stylesettings.ParseMode(v.(string))
		return err
	},
	key.ThemeDefaultID: func(v any) error {
		if strings.TrimSpace(v.(string)) == "" {
			return errors.New("default theme id must not be empty")
		}
		return nil
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("icons variant must be one of %s", strings.Join(icon.AvailableVariants(), ", "))
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

// resolutionKeys change what the engine resolves; cached themes built under
// the old value are stale once they change.
var resolutionKeys = []string{key.VaultPath, key.ThemeMode, key.ThemeDefaultID}

// Parse converts raw command-line values to the type of the default of k
// and checks the result against the rules registered for k.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", k)
	}

	var v any
	switch field.Value.(type) {
	case string:
		v = raw[0]
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer: %w", k, err)
		}
		v = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean: %w", k, err)
		}
		v = b
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("%s has unsupported type %T", k, field.Value)
	}

	if err := Validate(k, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks v against the rules registered for k. Keys without rules
// accept any value of the right type.
func Validate(k string, v any) error {
	validate, ok := validators[k]
	if !ok {
		return nil
	}
	if err := validate(v); err != nil {
		return fmt.Errorf("invalid %s: %w", k, err)
	}
	return nil
}

// AffectsResolution reports whether changing k invalidates resolved themes.
func AffectsResolution(k string) bool {
	return lo.Contains(resolutionKeys, k)
}
