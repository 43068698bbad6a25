package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/env"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core Core `yaml:"core"`
	UI   UI   `yaml:"ui"`
	View View `yaml:"view"`
}

type Core struct {
	// TrashDir overrides ~/.local/share/Drash. Absolute or "~/" prefixed.
	TrashDir         string        `yaml:"trash_dir" validate:"omitempty,validTrashDir"`
	AllowCrossDevice bool          `yaml:"allow_cross_device"`
	Restore          RestoreConfig `yaml:"restore"`
	Logging          LoggingConfig `yaml:"logging"`
}

type RestoreConfig struct {
	Verbose bool `yaml:"verbose"`
}

type LoggingConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Level    string         `yaml:"level" validate:"validLevel"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `yaml:"max_size" validate:"required,validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

type UI struct {
	Cursor     string `yaml:"cursor" validate:"validColor"`
	Selected   string `yaml:"selected" validate:"validColor"`
	TimeFormat string `yaml:"time_format" validate:"oneof=relative absolute"`
}

// View controls which trashed entries are shown by list and offered for
// selection
type View struct {
	Include IncludeConfig `yaml:"include"`
	Exclude ExcludeConfig `yaml:"exclude"`
}

type IncludeConfig struct {
	Period int `yaml:"within_days" validate:"gte=0"`
}

type ExcludeConfig struct {
	Files    []string   `yaml:"files"`
	Patterns []string   `yaml:"patterns"`
	Globs    []string   `yaml:"globs"`
	Size     SizeConfig `yaml:"size"`
}

type SizeConfig struct {
	Min string `yaml:"min" validate:"omitempty,validSize"`
	Max string `yaml:"max" validate:"omitempty,validSize"`
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.DRASH_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (e configError) Unwrap() error {
	return e.err
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := f.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) ensureConfigFile() (string, error) {
	path := env.DRASH_CONFIG_PATH
	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}
	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

// readConfigFile decodes path on top of the defaults, so keys missing from
// the file keep their default values
func (p parser) readConfigFile(path string) (Config, error) {
	cfg := *NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, verr := range verrs {
				return cfg, fmt.Errorf("validation error: Field %s, %q is invalid", verr.Namespace(), verr.Value())
			}
		}
		return cfg, err
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("validLevel", validateLevel)
	_ = validate.RegisterValidation("validColor", validateColorCode)
	_ = validate.RegisterValidation("validTrashDir", validateTrashDir)

	return parser{}
}

// Parse reads the config at path. An empty path means the default location,
// where a config with default values is created if none exists.
func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	var configPath string

	if path == "" {
		configPath, err = parser.ensureConfigFile()
		if err != nil {
			return cfg, parsingError{err: err}
		}
	} else {
		configPath = path
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}

// FilterOptions turns the view section into list and selection filters
func (v View) FilterOptions() drash.FilterOptions {
	return drash.FilterOptions{
		WithinDays:      v.Include.Period,
		ExcludeNames:    v.Exclude.Files,
		ExcludePatterns: v.Exclude.Patterns,
		ExcludeGlobs:    v.Exclude.Globs,
		MinSize:         v.Exclude.Size.Min,
		MaxSize:         v.Exclude.Size.Max,
	}
}

// TrashRoot returns where the trash lives: core.trash_dir when set,
// otherwise the default under home
func (c Core) TrashRoot(home string) (string, error) {
	if c.TrashDir == "" {
		return drash.DefaultRoot(home), nil
	}
	return expandPath(c.TrashDir, home)
}
