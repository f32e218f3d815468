package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// Section is the table holding the new-project settings
	Section = "cargo-new"
	// EnvPrefix selects the environment variables that override the section
	EnvPrefix = "CARGO_NEW_"

	// EnvCargoHome relocates the cargo home directory
	EnvCargoHome = "CARGO_HOME"
	// EnvKilnConfig points at the kiln user config file
	EnvKilnConfig = "KILN_CONFIG"

	vcsKey = Section + ".vcs"
)

// Sources returns the configuration files consulted from cwd, lowest
// precedence first. Files that do not exist are included; Load skips them.
func Sources(cwd string) []string {
	var sources []string
	seen := make(map[string]bool)
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			sources = append(sources, path)
		}
	}

	add(filepath.Join(cargoHome(), "config.toml"))
	add(userConfigPath())

	var ancestors []string
	for dir := filepath.Clean(cwd); ; dir = filepath.Dir(dir) {
		ancestors = append(ancestors, filepath.Join(dir, ".cargo", "config.toml"))
		if filepath.Dir(dir) == dir {
			break
		}
	}
	for i := len(ancestors) - 1; i >= 0; i-- {
		add(ancestors[i])
	}
	return sources
}

func cargoHome() string {
	if home := os.Getenv(EnvCargoHome); home != "" {
		return home
	}
	return filepath.Join(xdg.Home, ".cargo")
}

func userConfigPath() string {
	if path := os.Getenv(EnvKilnConfig); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Load merges every configuration layer visible from cwd into the
// preferences for new projects. An unknown vcs value fails with the layer
// it was found in.
func Load(cwd string) (types.GlobalPreferences, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return types.GlobalPreferences{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config files, one koanf per layer so the origin of vcs is known
	for _, path := range Sources(cwd) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		layer := koanf.New(".")
		if err := layer.Load(file.Provider(path), toml.Parser()); err != nil {
			return types.GlobalPreferences{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		if err := checkVcs(layer, path); err != nil {
			return types.GlobalPreferences{}, err
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
		if err := k.Merge(layer); err != nil {
			return types.GlobalPreferences{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge config from %s", path)
		}
	}

	// 3. Env vars
	layer := koanf.New(".")
	err := layer.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		value = strings.TrimSpace(value)
		if value == "" {
			return "", nil
		}
		return Section + "." + strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil)
	if err != nil {
		return types.GlobalPreferences{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if err := checkVcs(layer, "environment variable `"+EnvPrefix+"VCS`"); err != nil {
		return types.GlobalPreferences{}, err
	}
	if err := k.Merge(layer); err != nil {
		return types.GlobalPreferences{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
	}

	// 4. Unmarshal
	var prefs types.GlobalPreferences
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &prefs,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToVersionControlHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf(Section, &prefs, unmarshalConf); err != nil {
		return types.GlobalPreferences{}, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}
	return prefs, nil
}

func checkVcs(layer *koanf.Koanf, origin string) error {
	if !layer.Exists(vcsKey) {
		return nil
	}
	value := layer.String(vcsKey)
	if _, err := types.ParseVersionControl(value); err != nil {
		return errors.Newf(errors.ErrConfigInvalid,
			"invalid configuration for key `%s`, unknown vcs `%s` (found in %s)", vcsKey, value, origin).
			WithDetail("key", vcsKey).
			WithDetail("value", value).
			WithDetail("origin", origin)
	}
	return nil
}

func stringToVersionControlHookFunc() mapstructure.DecodeHookFunc {
	vcsType := reflect.TypeOf(types.VcsNone)
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != vcsType {
			return data, nil
		}
		return types.ParseVersionControl(data.(string))
	}
}
