package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/resync"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
	"golang.org/x/exp/slices"
)

// How many parent directories to traverse before considering a directory as not a blog directory
const maxDepth = 10

// Default .blog/config content
const DefaultConfig = `
[core]
language = "ja"
languages = ["ja", "en"]

[database]
path = "database.db"

[suggestions]
limit = 20
max_limit = 50
scan_limit = 100

[server]
addr = ":8080"
base_url = "http://localhost:8080"
rate = 10.0
burst = 20
`

// Default .blog/.gitignore content
const DefaultGitIgnore = `
/database.db
`

// Default .blogignore content
const DefaultIgnore = `
drafts/
README.md
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core        ConfigCore        `toml:"core"`
	Database    ConfigDatabase    `toml:"database"`
	Suggestions ConfigSuggestions `toml:"suggestions"`
	Server      ConfigServer      `toml:"server"`
}
type ConfigCore struct {
	// Default language when none is requested
	Language string `toml:"language"`
	// Supported languages
	Languages []string `toml:"languages"`
}
type ConfigDatabase struct {
	// Relative to .blog/
	Path string `toml:"path"`
}
type ConfigSuggestions struct {
	Limit     int `toml:"limit"`
	MaxLimit  int `toml:"max_limit"`
	ScanLimit int `toml:"scan_limit"`
}
type ConfigServer struct {
	Addr    string  `toml:"addr"`
	BaseURL string  `toml:"base_url"`
	Rate    float64 `toml:"rate"`  // requests per second
	Burst   int     `toml:"burst"` // token bucket size
}

// SupportLanguage checks if articles can be written in the given language.
func (f *ConfigFile) SupportLanguage(lang string) bool {
	return slices.Contains(f.Core.Languages, lang)
}

// applyDefaults completes a partial configuration file.
func (f *ConfigFile) applyDefaults() {
	if f.Core.Language == "" {
		f.Core.Language = DefaultLanguage
	}
	if len(f.Core.Languages) == 0 {
		f.Core.Languages = []string{f.Core.Language}
	}
	if !slices.Contains(f.Core.Languages, f.Core.Language) {
		f.Core.Languages = append(f.Core.Languages, f.Core.Language)
	}
	if f.Database.Path == "" {
		f.Database.Path = "database.db"
	}
	if f.Suggestions.Limit <= 0 {
		f.Suggestions.Limit = DefaultSuggestionLimit
	}
	if f.Suggestions.MaxLimit <= 0 {
		f.Suggestions.MaxLimit = MaxSuggestionLimit
	}
	if f.Suggestions.ScanLimit <= 0 {
		f.Suggestions.ScanLimit = SuggestionScanLimit
	}
	if f.Server.Addr == "" {
		f.Server.Addr = ":8080"
	}
	if f.Server.Rate <= 0 {
		f.Server.Rate = 10
	}
	if f.Server.Burst <= 0 {
		f.Server.Burst = 20
	}
}

// ArticleURL returns the absolute URL of an article path.
func (f *ConfigFile) ArticleURL(path string) string {
	return strings.TrimSuffix(f.Server.BaseURL, "/") + path
}

type IgnoreFile struct {
	Entries GlobPaths
}

// MustExcludeFile tests a path relative to the root directory.
func (i *IgnoreFile) MustExcludeFile(path string, dir bool) bool {
	path = filepath.ToSlash(strings.Trim(path, "/"))
	if dir {
		path += "/"
	}
	return i.Entries.Match(path)
}

// GlobPath is a .gitignore-like pattern. A leading ! negates the pattern.
type GlobPath string

func (g GlobPath) Negate() bool {
	return strings.HasPrefix(string(g), "!")
}

func (g GlobPath) Expr() string {
	return strings.TrimPrefix(string(g), "!")
}

// Regexp converts the pattern. ** matches 0-n directories, * matches inside a single directory.
func (g GlobPath) Regexp() (*regexp.Regexp, error) {
	expr := g.Expr()
	anchored := strings.HasPrefix(expr, "/")
	if !anchored {
		expr = "/" + expr
	}
	if strings.HasSuffix(expr, "/") {
		// A directory matches everything below it
		expr += "**/"
	}

	var patterns []string
	for _, part := range strings.Split(expr, "**/") {
		var quoted []string
		for _, segment := range strings.Split(part, "*") {
			quoted = append(quoted, regexp.QuoteMeta(segment))
		}
		patterns = append(patterns, strings.Join(quoted, "[^/]*?"))
	}
	pattern := strings.Join(patterns, "(?:.*?/)?")
	if anchored {
		pattern = "^" + pattern
	}
	return regexp.Compile(pattern)
}

// Match tests a path. Directories must have a trailing /.
func (g GlobPath) Match(path string) bool {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	re, err := g.Regexp()
	if err != nil {
		CurrentLogger().Warnf("Invalid glob pattern %q: %v", g, err)
		return false
	}
	return re.MatchString(path)
}

type GlobPaths []GlobPath

// Match tests if a file path satisfies the conditions.
// The last matching pattern wins.
func (g GlobPaths) Match(path string) bool {
	foundMatch := false
	for _, entry := range g {
		if entry.Match(path) {
			foundMatch = !entry.Negate()
		}
	}
	return foundMatch
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .blog sub-directory
	RootDirectory string

	// .blog/config content
	ConfigFile ConfigFile

	// .blogignore content
	IgnoreFile IgnoreFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			fmt.Fprintln(os.Stderr, "fatal: not a blog directory (or any of the parent directories): .blog")
			os.Exit(1)
		}
	})
	return configSingleton
}

// DatabasePath returns the absolute path of the SQLite database.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.ConfigFile.Database.Path) {
		return c.ConfigFile.Database.Path
	}
	return filepath.Join(c.RootDirectory, ".blog", c.ConfigFile.Database.Path)
}

// ResolveLanguage returns the default language when lang is empty
// and fails for unsupported languages.
func (c *Config) ResolveLanguage(lang string) (string, error) {
	if lang == "" {
		return c.ConfigFile.Core.Language, nil
	}
	if !c.ConfigFile.SupportLanguage(lang) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	return lang, nil
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes. Ex:
	//
	//   $ env BLOG_HOME=./examples go run ./cmd/blog serve
	if path, ok := os.LookupEnv("BLOG_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $BLOG_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $BLOG_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .blog directory in the given directory
// or any parent directories. It returns nil when no directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		_, err := os.Stat(filepath.Join(rootPath, ".blog"))
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %v", err)
		} else {
			break
		}
	}

	// Check for .blog/config
	content, err := readOptionalFile(filepath.Join(rootPath, ".blog", "config"), DefaultConfig)
	if err != nil {
		return nil, err
	}
	configFile, err := parseConfigFile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse .blog/config file: %v", err)
	}

	// Check for .blogignore
	content, err = readOptionalFile(filepath.Join(rootPath, ".blogignore"), DefaultIgnore)
	if err != nil {
		return nil, err
	}
	ignoreFile := parseIgnoreFile(content)

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
		IgnoreFile:    *ignoreFile,
	}, nil
}

// readOptionalFile returns the file content or the default content when the file is missing.
func readOptionalFile(path string, defaultContent string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultContent, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %v", path, err)
	}
	return string(content), nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	if err := d.Decode(&result); err != nil {
		return nil, err
	}
	result.applyDefaults()
	return &result, nil
}

func parseIgnoreFile(content string) *IgnoreFile {
	var result IgnoreFile
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if text.IsBlank(line) || strings.HasPrefix(line, "#") {
			continue
		}
		result.Entries = append(result.Entries, GlobPath(line))
	}
	return &result
}

// InitConfigFromDirectory creates the .blog configuration directory with default files including .blogignore.
func InitConfigFromDirectory(path string) (*Config, error) {
	currentConfig, err := ReadConfigFromDirectory(path)
	if err != nil {
		return nil, err
	}
	if currentConfig != nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %s", currentConfig.RootDirectory)
	}

	blogPath := filepath.Join(path, ".blog")
	if err := os.Mkdir(blogPath, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(blogPath, "config"), []byte(DefaultConfig), 0644); err != nil {
		return nil, err
	}

	// Do not override existing files!
	for file, content := range map[string]string{
		filepath.Join(blogPath, ".gitignore"): DefaultGitIgnore,
		filepath.Join(path, ".blogignore"):    DefaultIgnore,
	} {
		_, err := os.Stat(file)
		if os.IsNotExist(err) {
			if err := os.WriteFile(file, []byte(content), 0644); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}
