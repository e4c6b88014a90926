package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Output     OutputConfig     `mapstructure:"output"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Style      StyleConfig      `mapstructure:"style"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Log        LogConfig        `mapstructure:"log"`
}

type InputConfig struct {
	Path           string `mapstructure:"path"`
	StrictDistance bool   `mapstructure:"strict_distance"` // reject rows with distance <= 0
}

type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	GeoJSON string `mapstructure:"geojson"` // empty disables the export
}

// SimulationConfig drives the synthetic Gomti frontier clouds.
type SimulationConfig struct {
	Seed           int64   `mapstructure:"seed"`
	RadialPoints   int     `mapstructure:"radial_points"`
	RadialSigma    float64 `mapstructure:"radial_sigma"`
	CorridorPoints int     `mapstructure:"corridor_points"`
	CorridorSplit  float64 `mapstructure:"corridor_split"`
	CorridorNoise  float64 `mapstructure:"corridor_noise"`
}

type StyleConfig struct {
	DPI          float64  `mapstructure:"dpi"`
	FontSize     float64  `mapstructure:"font_size"`
	LabelSize    float64  `mapstructure:"label_size"`
	TitleSize    float64  `mapstructure:"title_size"`
	LegendSize   float64  `mapstructure:"legend_size"`
	SuptitleSize float64  `mapstructure:"suptitle_size"`
	GridAlpha    float64  `mapstructure:"grid_alpha"`
	FontPaths    []string `mapstructure:"font_paths"`
}

type TelegramConfig struct {
	BotToken      string  `mapstructure:"bot_token"`
	ChatID        int64   `mapstructure:"chat_id"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	MaxRetries    int     `mapstructure:"max_retries"`
}

type LogConfig struct {
	Dir string `mapstructure:"dir"`
}

// Validate checks the settings needed to publish. Rendering does not need
// them, so LoadConfig leaves them alone.
func (t TelegramConfig) Validate() error {
	if t.BotToken == "" {
		return errors.New("telegram.bot_token is required (env: TELEGRAM_BOT_TOKEN)")
	}
	if t.ChatID == 0 {
		return errors.New("telegram.chat_id is required (env: TELEGRAM_CHAT_ID)")
	}
	return nil
}

// RegisterFlags adds one flag per config key to fs. Unset flags fall back to
// the lower layers.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (default ./config.yaml)")

	fs.String("input.path", "lucknow_research_data.csv", "Trials CSV (env: FRONTIER_INPUT)")
	fs.Bool("input.strict_distance", false, "Fail on rows with distance <= 0 (env: FRONTIER_STRICT_DISTANCE)")

	fs.String("output.dir", ".", "Directory for the figures (env: FRONTIER_OUTPUT_DIR)")
	fs.String("output.geojson", "", "Also write the frontier clouds as GeoJSON to this path (env: FRONTIER_GEOJSON)")

	fs.Int64("simulation.seed", 42, "Seed for the frontier simulation")
	fs.Int("simulation.radial_points", 6000, "Points in the radial Dijkstra cloud")
	fs.Float64("simulation.radial_sigma", 0.045, "Standard deviation of the radial cloud, degrees")
	fs.Int("simulation.corridor_points", 1500, "Points in the A* corridor")
	fs.Float64("simulation.corridor_split", 0.6, "Share of corridor points on the source-bridge leg")
	fs.Float64("simulation.corridor_noise", 0.004, "Standard deviation of corridor jitter, degrees")

	fs.Float64("style.dpi", 300, "Figure resolution (env: FRONTIER_DPI)")
	fs.Float64("style.font_size", 12, "Base font size, points")
	fs.Float64("style.label_size", 14, "Axis label size, points")
	fs.Float64("style.title_size", 16, "Axes title size, points")
	fs.Float64("style.legend_size", 12, "Legend font size, points")
	fs.Float64("style.suptitle_size", 18, "Figure title size, points")
	fs.Float64("style.grid_alpha", 0.3, "Grid line opacity")
	fs.String("style.font_paths", "", "Comma-separated TrueType files tried before the built-in list (env: FRONTIER_FONT_PATHS)")

	fs.String("telegram.bot_token", "", "Telegram bot token (env: TELEGRAM_BOT_TOKEN)")
	fs.Int64("telegram.chat_id", 0, "Telegram chat ID (env: TELEGRAM_CHAT_ID)")
	fs.Float64("telegram.rate_per_second", 1, "Max photo sends per second")
	fs.Int("telegram.max_retries", 3, "Retries per photo on 429/5xx")

	fs.String("log.dir", "logs", "Directory for app.log (env: FRONTIER_LOG_DIR)")
}

// LoadConfig layers configuration in this order, later wins:
// 1. defaults
// 2. config.yaml (or --config)
// 3. .env file and process environment
// 4. flags that were set on the command line
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	configFile := ""
	if flags != nil {
		configFile, _ = flags.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setupEnvAliases(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// font_paths is a list in YAML and a comma-separated string from env or flags.
	switch raw := v.Get("style.font_paths").(type) {
	case string:
		config.Style.FontPaths = splitList(raw)
	case []string:
		config.Style.FontPaths = raw
	case []interface{}:
		paths := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				paths = append(paths, strings.TrimSpace(s))
			}
		}
		config.Style.FontPaths = paths
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// Input / output
	v.BindEnv("input.path", "FRONTIER_INPUT")
	v.BindEnv("input.strict_distance", "FRONTIER_STRICT_DISTANCE")
	v.BindEnv("output.dir", "FRONTIER_OUTPUT_DIR")
	v.BindEnv("output.geojson", "FRONTIER_GEOJSON")

	// Style
	v.BindEnv("style.dpi", "FRONTIER_DPI")
	v.BindEnv("style.font_paths", "FRONTIER_FONT_PATHS")

	// Telegram
	v.BindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")

	v.BindEnv("log.dir", "FRONTIER_LOG_DIR")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "lucknow_research_data.csv")
	v.SetDefault("input.strict_distance", false)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.geojson", "")

	v.SetDefault("simulation.seed", 42)
	v.SetDefault("simulation.radial_points", 6000)
	v.SetDefault("simulation.radial_sigma", 0.045)
	v.SetDefault("simulation.corridor_points", 1500)
	v.SetDefault("simulation.corridor_split", 0.6)
	v.SetDefault("simulation.corridor_noise", 0.004)

	v.SetDefault("style.dpi", 300)
	v.SetDefault("style.font_size", 12)
	v.SetDefault("style.label_size", 14)
	v.SetDefault("style.title_size", 16)
	v.SetDefault("style.legend_size", 12)
	v.SetDefault("style.suptitle_size", 18)
	v.SetDefault("style.grid_alpha", 0.3)
	v.SetDefault("style.font_paths", []string{})

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.rate_per_second", 1.0)
	v.SetDefault("telegram.max_retries", 3)

	v.SetDefault("log.dir", "logs")
}

func validateConfig(cfg *Config) error {
	if cfg.Input.Path == "" {
		return errors.New("input.path must not be empty")
	}
	if cfg.Style.DPI <= 0 {
		return fmt.Errorf("style.dpi must be positive, got %v", cfg.Style.DPI)
	}
	if cfg.Style.GridAlpha < 0 || cfg.Style.GridAlpha > 1 {
		return fmt.Errorf("style.grid_alpha must be in [0, 1], got %v", cfg.Style.GridAlpha)
	}
	sim := cfg.Simulation
	if sim.RadialPoints < 0 || sim.CorridorPoints < 0 {
		return errors.New("simulation point counts must not be negative")
	}
	if sim.RadialSigma < 0 || sim.CorridorNoise < 0 {
		return errors.New("simulation spreads must not be negative")
	}
	if sim.CorridorSplit < 0 || sim.CorridorSplit > 1 {
		return fmt.Errorf("simulation.corridor_split must be in [0, 1], got %v", sim.CorridorSplit)
	}
	if cfg.Telegram.RatePerSecond <= 0 {
		return fmt.Errorf("telegram.rate_per_second must be positive, got %v", cfg.Telegram.RatePerSecond)
	}
	if cfg.Telegram.MaxRetries < 0 {
		return errors.New("telegram.max_retries must not be negative")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
