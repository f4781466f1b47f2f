package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type SearchCfg struct {
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size" json:"max_page_size"`
}

// DictionaryCacheCfg ttl_seconds = 0 nghĩa là tắt cache, từ điển đọc mới mỗi lượt tìm
type DictionaryCacheCfg struct {
	Backend    string `yaml:"backend" json:"backend"` // none | memory | redis | hybrid
	TTLSeconds int    `yaml:"ttl_seconds" json:"ttl_seconds"`
}

type HTTPCfg struct {
	RateLimitRPS     float64 `yaml:"rate_limit_rps" json:"rate_limit_rps"` // <= 0 là không giới hạn
	RateLimitBurst   int     `yaml:"rate_limit_burst" json:"rate_limit_burst"`
	RequestTimeoutMs int     `yaml:"request_timeout_ms" json:"request_timeout_ms"`
}

type ServiceCfg struct {
	Search          SearchCfg          `yaml:"search" json:"search"`
	DictionaryCache DictionaryCacheCfg `yaml:"dictionary_cache" json:"dictionary_cache"`
	HTTP            HTTPCfg            `yaml:"http" json:"http"`
}

// Cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheHybrid = "hybrid"
)

var C = Defaults()

// Defaults giá trị dùng khi không có file cấu hình
func Defaults() ServiceCfg {
	return ServiceCfg{
		Search:          SearchCfg{DefaultPageSize: 12, MaxPageSize: 100},
		DictionaryCache: DictionaryCacheCfg{Backend: CacheNone},
		HTTP:            HTTPCfg{RateLimitRPS: 50, RateLimitBurst: 100, RequestTimeoutMs: 1500},
	}
}

func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return err
	}
	applyEnv(&cfg)
	cfg.normalize()
	C = cfg
	return nil
}

// applyEnv ENV overrides
func applyEnv(cfg *ServiceCfg) {
	if v := os.Getenv("DICTIONARY_CACHE_BACKEND"); v != "" {
		cfg.DictionaryCache.Backend = v
	}
	if v, err := strconv.Atoi(os.Getenv("DICTIONARY_CACHE_TTL_SECONDS")); err == nil {
		cfg.DictionaryCache.TTLSeconds = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil {
		cfg.HTTP.RateLimitRPS = v
	}
}

func (cfg *ServiceCfg) normalize() {
	if cfg.Search.DefaultPageSize < 1 {
		cfg.Search.DefaultPageSize = 12
	}
	if cfg.Search.MaxPageSize < cfg.Search.DefaultPageSize {
		cfg.Search.MaxPageSize = cfg.Search.DefaultPageSize
	}
	switch cfg.DictionaryCache.Backend {
	case CacheMemory, CacheRedis, CacheHybrid:
	default:
		cfg.DictionaryCache.Backend = CacheNone
	}
	if cfg.DictionaryCache.TTLSeconds <= 0 {
		cfg.DictionaryCache.Backend = CacheNone
		cfg.DictionaryCache.TTLSeconds = 0
	}
}

// DictionaryCacheTTL 0 khi tắt cache
func DictionaryCacheTTL() time.Duration {
	return time.Duration(C.DictionaryCache.TTLSeconds) * time.Second
}

func RequestTimeout() time.Duration {
	if C.HTTP.RequestTimeoutMs <= 0 {
		return 1500 * time.Millisecond
	}
	return time.Duration(C.HTTP.RequestTimeoutMs) * time.Millisecond
}
