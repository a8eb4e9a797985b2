// Package config reads and validates .corscheck.yaml.
// The configuration only changes which files are scanned; the patterns
// applied to each line are fixed.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	CurrentVersion = 1
	DefaultRoot    = "src"
)

// DefaultSuffixes returns the file name suffixes scanned when suffixes aren't configured.
func DefaultSuffixes() []string {
	return []string{".ts", ".tsx"}
}

type Config struct {
	Version     int           `json:"version,omitempty" jsonschema:"enum=1"`
	Root        string        `json:"root,omitempty" jsonschema:"description=The directory to scan. The default is src"`
	Suffixes    []string      `json:"suffixes,omitempty" jsonschema:"description=File name suffixes of target files. The default is .ts and .tsx"`
	ExcludeDirs []*ExcludeDir `json:"exclude_dirs,omitempty" yaml:"exclude_dirs" jsonschema:"description=Directories that corscheck doesn't walk into"`
}

// SetDefault fills unset fields.
func (c *Config) SetDefault() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if len(c.Suffixes) == 0 {
		c.Suffixes = DefaultSuffixes()
	}
}

func (c *Config) Init() error {
	switch c.Version {
	case 0, CurrentVersion:
	default:
		return fmt.Errorf("unsupported version: %d", c.Version)
	}
	for _, suffix := range c.Suffixes {
		if suffix == "" {
			return errors.New("suffixes must not include an empty string")
		}
	}
	for _, ed := range c.ExcludeDirs {
		if err := ed.Init(); err != nil {
			return fmt.Errorf("initialize exclude_dirs: %w", err)
		}
	}
	c.SetDefault()
	return nil
}

// IsExcludedDir reports whether a directory with the given base name is skipped.
func (c *Config) IsExcludedDir(name string) (bool, error) {
	for _, ed := range c.ExcludeDirs {
		f, err := ed.Match(name)
		if err != nil {
			return false, err
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type ExcludeDir struct {
	Name       string `json:"name" jsonschema:"description=A directory base name"`
	NameFormat string `json:"name_format" yaml:"name_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	nameRegexp *regexp.Regexp
}

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(value, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("name_format must be fixed_string, glob, or regexp")
	}
}

func (ed *ExcludeDir) Init() error {
	if ed.Name == "" {
		return errors.New("name is required")
	}
	if ed.NameFormat == "" {
		return errors.New("name_format is required")
	}
	var err error
	ed.nameRegexp, err = initFormat(ed.Name, ed.NameFormat)
	return err
}

func match(value, name, format string, r *regexp.Regexp) (bool, error) {
	switch format {
	case formatFixedString:
		return value == name, nil
	case formatGlob:
		f, err := path.Match(name, value)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		if r == nil {
			return false, errors.New("the regular expression isn't compiled")
		}
		return r.MatchString(value), nil
	default:
		return false, errors.New("unexpected format: " + format)
	}
}

func (ed *ExcludeDir) Match(name string) (bool, error) {
	f, err := match(name, ed.Name, ed.NameFormat, ed.nameRegexp)
	if err != nil {
		return false, fmt.Errorf("match name: %w", err)
	}
	return f, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".corscheck.yaml", ".github/corscheck.yaml", ".corscheck.yml", ".github/corscheck.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it looks for a configuration file in the current directory
// and returns an empty string if nothing is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the configuration file into cfg and validates it.
// If configFilePath is empty, cfg is only initialized with default values.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return cfg.Init()
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// empty file
			return cfg.Init()
		}
		return fmt.Errorf("decode a configuration file as YAML (if the file is old, please run `corscheck migrate`): %w", err)
	}
	return cfg.Init()
}
