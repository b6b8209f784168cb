package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/filesystem"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
)

// SchemesKey is the table holding the color schemes. Every configuration
// file must define it.
const SchemesKey = RootKey + ".color_schemes"

// EnvPrefix prefixes the environment variables overriding defaults
const EnvPrefix = "COLORING_TEE_"

// Options control where Load reads from
type Options struct {
	// Path is the configuration file. Empty loads the embedded template.
	Path string
	// FS reads Path. When nil the file is read from disk directly.
	FS filesystem.FS
	// Overrides are applied last. Keys are relative to the root table,
	// for example "defaults.bold".
	Overrides map[string]interface{}
}

// Load reads, merges, decodes and validates the configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	defer logging.LogDuration(time.Now(), "config-load")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file or the embedded template
	if err := loadFile(k, opts); err != nil {
		return nil, err
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		overrides := make(map[string]interface{}, len(opts.Overrides))
		for key, value := range opts.Overrides {
			overrides[RootKey+"."+key] = value
		}
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	if !k.Exists(SchemesKey) {
		return nil, errors.Newf(errors.ErrConfigInvalid, "%q is not a table", SchemesKey).
			WithDetail("key", SchemesKey).
			WithDetail("path", opts.Path)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = opts.Path

	if err := validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", opts.Path).
		Strs("schemes", cfg.SchemeNames()).
		Strs("defaultSchemes", cfg.Defaults.ColorSchemes).
		Bool("bold", cfg.Defaults.Bold).
		Msg("Configuration loaded")

	return cfg, nil
}

func loadFile(k *koanf.Koanf, opts Options) error {
	if opts.Path == "" {
		if err := k.Load(&rawBytesProvider{bytes: userTemplate}, toml.Parser()); err != nil {
			return errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded configuration")
		}
		return nil
	}

	parser := parserFor(opts.Path)

	if opts.FS != nil {
		data, err := opts.FS.ReadFile(opts.Path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "cannot open configuration file %q", opts.Path).
				WithDetail("path", opts.Path)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", opts.Path).
				WithDetail("path", opts.Path)
		}
		return nil
	}

	if _, err := os.Stat(opts.Path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot open configuration file %q", opts.Path).
			WithDetail("path", opts.Path)
	}
	if err := k.Load(file.Provider(opts.Path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", opts.Path).
			WithDetail("path", opts.Path)
	}
	return nil
}

// parserFor picks the parser by file extension, TOML unless YAML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps COLORING_TEE_DEFAULTS_BOLD to coloring_tee_config.defaults.bold.
// Only the defaults table can be set from the environment.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if !strings.HasPrefix(key, "defaults_") {
		return ""
	}
	return RootKey + "." + strings.Replace(key, "_", ".", 1)
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf(RootKey, &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
