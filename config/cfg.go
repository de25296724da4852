package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"thesisdoc/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// MarginsConfig values are in twentieths of a point.
	MarginsConfig struct {
		Top    int `yaml:"top" validate:"gte=0"`
		Right  int `yaml:"right" validate:"gte=0"`
		Bottom int `yaml:"bottom" validate:"gte=0"`
		Left   int `yaml:"left" validate:"gte=0"`
		Header int `yaml:"header" validate:"gte=0"`
		Footer int `yaml:"footer" validate:"gte=0"`
	}

	PageConfig struct {
		Size            PageSize      `yaml:"size"`
		Orientation     Orientation   `yaml:"orientation"`
		Margins         MarginsConfig `yaml:"margins"`
		HeaderTemplate  string        `yaml:"header_template"`
		FooterText      string        `yaml:"footer_text"`
		PageNumbers     bool          `yaml:"page_numbers"`
		NumberTitlePage bool          `yaml:"number_title_page"`
	}

	FontConfig struct {
		Name string `yaml:"name" validate:"required"`
		// Size in points
		Size int `yaml:"size" validate:"min=6,max=72"`
	}

	ImagesConfig struct {
		DefaultWidth  int  `yaml:"default_width" validate:"min=1"`
		DefaultHeight int  `yaml:"default_height" validate:"min=1"`
		FitToPage     bool `yaml:"fit_to_page"`
	}

	TitlesConfig struct {
		Abstract   string `yaml:"abstract" validate:"required"`
		TOC        string `yaml:"toc" validate:"required"`
		References string `yaml:"references" validate:"required"`
		Committee  string `yaml:"committee"`
		AuthorLine string `yaml:"author_prefix"`
	}

	ReferencesConfig struct {
		Style common.CitationStyle `yaml:"style" validate:"oneof=export apa mla chicago"`
	}

	DocumentConfig struct {
		FixZip                bool             `yaml:"fix_zip"`
		Language              string           `yaml:"language" validate:"required,bcp47_language_tag"`
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
		Page                  PageConfig       `yaml:"page"`
		Font                  FontConfig       `yaml:"font"`
		Images                ImagesConfig     `yaml:"images"`
		Titles                TitlesConfig     `yaml:"titles"`
		References            ReferencesConfig `yaml:"references"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, these are expanded per
	// document, not when configuration is loaded
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	HeaderTemplateFieldName     TemplateFieldName = "header_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(HeaderTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// TextWidth returns usable width of the page body in twips.
func (p *PageConfig) TextWidth() int {
	w, _ := p.Size.Dimensions(p.Orientation)
	return max(w-p.Margins.Left-p.Margins.Right, 0)
}
