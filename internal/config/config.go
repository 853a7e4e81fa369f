package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// The env var name is kept from the original web deployment so one
// environment configures both frontends.
const baseURLEnv = "NEXT_PUBLIC_API_BASE_URL"

const (
	defaultBaseURL  = "http://localhost:8000"
	defaultPageSize = 9
	defaultTopK     = 3
)

// Config holds the runtime settings for the client.
type Config struct {
	BaseURL     string
	PageSize    int
	TopK        int
	StoragePath string
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		BaseURL:     defaultBaseURL,
		PageSize:    defaultPageSize,
		TopK:        defaultTopK,
		StoragePath: defaultStoragePath(),
	}
}

// Load reads the ini config at path and applies the environment
// override for the API base URL. An empty path yields the defaults.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		cfg, err := ini.Load(path)
		if err != nil {
			return c, fmt.Errorf("load config %s: %w", path, err)
		}

		api := cfg.Section("api")
		if v := api.Key("base_url").String(); v != "" {
			c.BaseURL = v
		}
		if v, err := api.Key("top_k").Int(); err == nil && v > 0 {
			c.TopK = v
		}

		listing := cfg.Section("listing")
		if v, err := listing.Key("page_size").Int(); err == nil && v > 0 {
			c.PageSize = v
		}

		shopping := cfg.Section("shopping")
		if v := shopping.Key("storage_path").String(); v != "" {
			c.StoragePath = v
		}
	}

	if v := os.Getenv(baseURLEnv); v != "" {
		c.BaseURL = v
	}

	return c, nil
}

// defaultStoragePath places the shopping list under the user config
// dir, falling back to the working directory when it is unavailable.
func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shopping-list-storage.json"
	}
	return filepath.Join(dir, "culinairy", "shopping-list-storage.json")
}
