// Package config loads reader settings from defaults, a TOML file and
// PAGEVIEW_* environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/cristianoliveira/pageview/internal/colors"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PAGEVIEW_PAGE_WIDTH.
	EnvPrefix = "PAGEVIEW_"
	// EnvConfigPath points at an explicit configuration file.
	EnvConfigPath = EnvPrefix + "CONFIG_PATH"

	appName    = "pageview"
	configFile = "config.toml"

	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// documented lists the keys written to the sample file, with their defaults.
var documented = []struct{ key, value string }{
	{"page_width", "72"},
	{"page_height", "20"},
	{"evict_distant", "false"},
	{"frame_interval_ms", "16"},
	{"swipe_threshold", "2"},
	{"logging_enabled", "false"},
	{"logging_level", "info"},
	{"logging_max_files", "10"},
	{"debug", "false"},
}

var (
	values map[string]string
	mu     sync.RWMutex
)

func init() {
	initValidators()
}

// Load reads the configuration. It may be called again to pick up changes.
func Load() {
	defaults := defaultValues()
	env := fromEnv()

	loaded := maps.Clone(defaults)
	maps.Copy(loaded, env)
	if file, ok := fromFile(filePath(loaded)); ok {
		maps.Copy(loaded, file)
		maps.Copy(loaded, env)
	}
	normalize(loaded, defaults)
	if loaded["db_path"] == "" {
		loaded["db_path"] = filepath.Join(loaded["state_dir"], appName+".db")
	}
	writeSample(loaded["config_dir"])

	mu.Lock()
	values = loaded
	mu.Unlock()
}

func reset() {
	mu.Lock()
	values = nil
	mu.Unlock()
}

func defaultValues() map[string]string {
	home, _ := os.UserHomeDir()
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	d := map[string]string{
		"config_dir": filepath.Join(configHome, appName),
		"state_dir":  filepath.Join(stateHome, appName),
	}
	for _, kv := range documented {
		d[kv.key] = kv.value
	}
	return d
}

func fromEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if name == EnvConfigPath || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		env[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))] = value
	}
	return env
}

func filePath(current map[string]string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(current["config_dir"], configFile)
}

// fromFile decodes a flat TOML table of scalars. A missing file is not an error.
func fromFile(path string) (map[string]string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			colors.Warning(fmt.Sprintf("config: cannot read %s: %v", path, err))
		}
		return nil, false
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		colors.Warning(fmt.Sprintf("config: cannot parse %s: %v", path, err))
		return nil, false
	}

	out := make(map[string]string, len(doc))
	for k, v := range doc {
		s, ok := scalarString(v)
		if !ok {
			colors.Warning(fmt.Sprintf("config: %s in %s must be a string, number or boolean", k, path))
			continue
		}
		out[strings.ToLower(k)] = s
	}
	return out, true
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func normalize(loaded, defaults map[string]string) {
	for key, raw := range loaded {
		v := validatorFor(key)
		if v == nil {
			continue
		}
		out, err := v(key, raw, defaults[key])
		if err != nil {
			colors.Warning(fmt.Sprintf("config %s: %v; using %s", key, err, defaults[key]))
			out = defaults[key]
		}
		loaded[key] = out
	}
}

// writeSample creates dir/config.toml with the documented defaults unless
// a file already exists.
func writeSample(dir string) {
	if dir == "" {
		return
	}
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		colors.Debug(fmt.Sprintf("config: cannot create %s: %v", dir, err))
		return
	}

	var b strings.Builder
	b.WriteString("# pageview configuration\n")
	b.WriteString("# Environment variables prefixed with " + EnvPrefix + " take precedence.\n\n")
	for _, kv := range documented {
		line, err := toml.Marshal(map[string]any{kv.key: typed(kv.value)})
		if err != nil {
			colors.Warning(fmt.Sprintf("config: cannot encode %s: %v", kv.key, err))
			return
		}
		b.Write(line)
	}
	if err := os.WriteFile(path, []byte(b.String()), fileMode); err != nil {
		colors.Warning(fmt.Sprintf("config: cannot write sample %s: %v", path, err))
	}
}

func typed(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// Get returns the value of key, or defaultValue when it is unset.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := values[key]; ok {
		return v
	}
	return defaultValue
}

// GetInt returns key as an integer, or defaultValue when it is unset or not a number.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns key as a boolean, or defaultValue when it is unset or not a boolean.
func GetBool(key string, defaultValue bool) bool {
	b, ok := parseBool(Get(key, ""))
	if !ok {
		return defaultValue
	}
	return b
}
