package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BuzzLyutic/todo-dashboard/internal/validation"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	NotesDir       string   `yaml:"notes_dir" validate:"required"`
	SnapshotPath   string   `yaml:"snapshot_path" validate:"required"`
	SnapshotURL    string   `yaml:"snapshot_url" validate:"omitempty,url"`
	Port           string   `yaml:"port" validate:"required,numeric"`
	BasePath       string   `yaml:"base_path" validate:"required,startswith=/"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,eq=*|url"`
	Debug          bool     `yaml:"debug"`
}

// Load: значения по умолчанию, затем YAML из TODO_CONFIG, затем переменные окружения
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("TODO_CONFIG"); path != "" {
		if err := loadFile(expandHome(path), &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.NotesDir = getEnv("NOTES_DIR", cfg.NotesDir)
	cfg.SnapshotPath = getEnv("SNAPSHOT_PATH", cfg.SnapshotPath)
	cfg.SnapshotURL = getEnv("SNAPSHOT_URL", cfg.SnapshotURL)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.BasePath = getEnv("BASE_PATH", cfg.BasePath)
	cfg.AllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.Debug = getEnvBool("DEBUG", cfg.Debug)

	cfg.NotesDir = expandHome(cfg.NotesDir)
	cfg.SnapshotPath = expandHome(cfg.SnapshotPath)
	cfg.BasePath = normalizeBasePath(cfg.BasePath)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		NotesDir:     filepath.Join("~", "Documents", "MyVault", "ToDo"),
		SnapshotPath: filepath.Join("public", "data", "todos.json"),
		Port:         "8080",
		BasePath:     "/",
	}
}

func (c Config) Validate() error {
	if err := validation.Validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	return nil
}

// "kiyo-dashboard" и "/kiyo-dashboard/" дают "/kiyo-dashboard"
func normalizeBasePath(p string) string {
	return "/" + strings.Trim(strings.TrimSpace(p), "/")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1" || v == "yes"
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
