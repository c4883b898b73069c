package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

type ScenarioConfig struct {
	Name  string       `yaml:"name"`
	Init  []int64      `yaml:"init,omitempty"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig is one operation on the list. Which fields are used depends
// on Op. Pointer fields are optional checks of an "expect" step.
type StepConfig struct {
	Op     string  `yaml:"op"`
	Value  int64   `yaml:"value,omitempty"`
	Values []int64 `yaml:"values,omitempty"`
	Index  int     `yaml:"index,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Lua    string  `yaml:"lua,omitempty"`
	Sep    string  `yaml:"sep,omitempty"`

	Size  *int    `yaml:"size,omitempty"`
	Front *int64  `yaml:"front,omitempty"`
	Back  *int64  `yaml:"back,omitempty"`
	Want  *string `yaml:"want,omitempty"`
}

// loadConfig reads a scenario file. Files with a .gz suffix are
// decompressed first.
func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rd io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream, %w", err)
		}
		defer gz.Close()
		rd = gz
	}
	b, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return decodeConfig(b)
}

func decodeConfig(b []byte) (*Config, error) {
	cfg := new(Config)
	m := make(map[string]any)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml config, %w", err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "yaml",
		Result:      cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init yaml decoder, %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml struct, %w", err)
	}
	for i := range cfg.Scenarios {
		if len(cfg.Scenarios[i].Name) == 0 {
			cfg.Scenarios[i].Name = fmt.Sprintf("#%d", i)
		}
	}
	return cfg, nil
}

func genConfigTemplate(w io.Writer) error {
	cfg := &Config{
		Scenarios: []ScenarioConfig{{
			Name: "example",
			Init: []int64{1, 2, 3},
			Steps: []StepConfig{
				{Op: "push_back", Values: []int64{4, 5}},
				{Op: "remove_if", Lua: "v % 2 == 0"},
				{Op: "expect", Values: []int64{1, 3, 5}},
			},
		}},
	}

	b := new(bytes.Buffer)
	encoder := yaml.NewEncoder(b)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config, %w", err)
	}
	encoder.Close()
	_, err := w.Write(b.Bytes())
	return err
}

func setDefaultGZ[T constraints.Float | constraints.Integer](i *T, s, d T) {
	if s > 0 {
		*i = s
	} else {
		*i = d
	}
}
