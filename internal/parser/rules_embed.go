package parser

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/stopwords.yaml
var stopwordsYAML []byte

// RulesConfig chứa cấu hình rules được load từ YAML
type RulesConfig struct {
	Stopwords []string `yaml:"stopwords"`
}

// LoadRulesConfig load cấu hình rules từ embedded YAML
func LoadRulesConfig() (*RulesConfig, error) {
	config := &RulesConfig{}
	if err := yaml.Unmarshal(stopwordsYAML, config); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultStopwords trả về danh sách từ nối mặc định
func DefaultStopwords() []string {
	config, err := LoadRulesConfig()
	if err != nil {
		// file nhúng lúc build, lỗi ở đây là lỗi lập trình
		panic(err)
	}
	return config.Stopwords
}
