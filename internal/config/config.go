package config

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
)

type Config struct {
	Port    string `json:"port"`
	SeedDir string `json:"seedDir"`
	DBURL   string `json:"dbUrl"` // empty = in-memory only
}

func def() Config {
	return Config{
		Port:    "8080",
		SeedDir: "seeds",
		DBURL:   "",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// LoadWithPath reads JSON from the given path (if present), then applies
// ENV and flag overrides, in that order.
func LoadWithPath(jsonPath string) Config {
	cfg := def()

	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	// ENV overrides
	cfg.Port = getenv("WOORI_PORT", cfg.Port)
	cfg.SeedDir = getenv("WOORI_SEED_DIR", cfg.SeedDir)
	cfg.DBURL = getenv("WOORI_DB_URL", cfg.DBURL)

	// Flag overrides
	configPath := flag.String("config", jsonPath, "Path to config JSON")
	port := flag.String("port", cfg.Port, "HTTP port")
	seeds := flag.String("seeds", cfg.SeedDir, "Path to seed catalog directory")
	db := flag.String("db", cfg.DBURL, "Postgres URL (empty = in-memory)")

	flag.Parse()

	// A different config passed via flag wins wholesale
	if *configPath != jsonPath {
		return LoadWithPath(*configPath)
	}

	cfg.Port = strings.TrimSpace(*port)
	cfg.SeedDir = strings.TrimSpace(*seeds)
	cfg.DBURL = strings.TrimSpace(*db)

	return cfg
}
