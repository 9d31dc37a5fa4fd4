// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
// Each value is a comma separated list of keys.
type KeyMapConfig struct {
	Up          string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down        string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Activate    string `yaml:"activate" kong:"help='Show entry key',default='enter'"`
	FocusInput  string `yaml:"focus_input" kong:"help='Focus URL input key',default='esc'"`
	ToggleFocus string `yaml:"toggle_focus" kong:"help='Toggle focus between input and list',default='tab'"`
	Refresh     string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	OpenBrowser string `yaml:"open_browser" kong:"help='Open entry link in browser key',default='o'"`
	Help        string `yaml:"help" kong:"help='Toggle help key',default='?'"`
	Quit        string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent        string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted         string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	MarkdownStyle string `yaml:"markdown_style" kong:"help='Glamour style for entry bodies (dark/light/notty/auto)',default='dark'"`
}

// FetchConfig defines how feeds are retrieved.
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Fetch timeout in seconds',default='10'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header; empty uses the built-in one'"`
	MaxBodyBytes   int64  `yaml:"max_body_bytes" kong:"help='Largest accepted response body in bytes',default='10485760'"`
}

// Timeout returns the fetch timeout as a duration.
func (c FetchConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheConfig defines the conditional GET response cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" kong:"help='Reuse cached responses through conditional GET',default='true'"`
	File    string `yaml:"file" kong:"help='Cache database path'"`
}

// LogConfig defines log output.
type LogConfig struct {
	File  string `yaml:"file" kong:"help='Log file path'"`
	Level string `yaml:"level" kong:"help='Log level (trace/debug/info/warn/error)',default='info'"`
}

// Settings represents the application configuration.
type Settings struct {
	KeyMap KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme  ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Fetch  FetchConfig  `yaml:"fetch" kong:"embed,prefix='fetch.'"`
	Cache  CacheConfig  `yaml:"cache" kong:"embed,prefix='cache.'"`
	Log    LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
}
