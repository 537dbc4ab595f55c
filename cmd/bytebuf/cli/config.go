// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"bytebuf.io/bytebuf"
)

// Config carries the defaults a user can persist in a config file.  A zero
// field means the corresponding flag default stands.
type Config struct {
	NCpu    uint16
	Convert ConvertConfig
	Dump    DumpConfig
	Info    InfoConfig
}

// ConvertConfig holds defaults for the convert command.
type ConvertConfig struct {
	To   string // target encoding name
	Wrap int    // column armored output is folded at
}

// DumpConfig holds defaults for the dump command.
type DumpConfig struct {
	Width int // bytes shown per row
}

// InfoConfig holds defaults for the info command.
type InfoConfig struct {
	Preview int // preview length in grapheme clusters
}

// DefaultConfig provides the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Dump: DumpConfig{Width: 16},
		Info: InfoConfig{Preview: 32},
	}
}

// fileConfig mirrors the TOML layout of the config file.
type fileConfig struct {
	NCpu    uint16 `toml:"ncpu"`
	Convert struct {
		To   string `toml:"to"`
		Wrap int    `toml:"wrap"`
	} `toml:"convert"`
	Dump struct {
		Width int `toml:"width"`
	} `toml:"dump"`
	Info struct {
		Preview int `toml:"preview"`
	} `toml:"info"`
}

var (
	configPath string
	configOnce sync.Once
	config     Config
)

// Defaults resolves the effective configuration, loading the config file the
// first time it is called.  A missing file at the default location yields
// the built-in defaults; any other failure is fatal.
func Defaults() Config {
	configOnce.Do(func() {
		path := configPath
		explicit := path != ""
		if !explicit {
			path = defaultPath()
		}

		cfg, err := LoadConfig(path, explicit)
		if err != nil {
			log.Fatal(err)
		}

		config = cfg
	})

	return config
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "bytebuf", "config.toml")
}

// LoadConfig overlays the TOML file at path onto the built-in defaults.
// Only keys present in the file override a default.  When required is false
// a missing file simply yields the defaults.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("could not load config %s: %w", path, err)
	}

	if meta.IsDefined("ncpu") {
		cfg.NCpu = raw.NCpu
	}

	if meta.IsDefined("convert", "to") {
		if _, err := bytebuf.ParseEncoding(raw.Convert.To); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Convert.To = raw.Convert.To
	}

	if meta.IsDefined("convert", "wrap") {
		if raw.Convert.Wrap < 0 {
			return Config{}, fmt.Errorf("config %s: wrap must not be negative", path)
		}
		cfg.Convert.Wrap = raw.Convert.Wrap
	}

	if meta.IsDefined("dump", "width") {
		if raw.Dump.Width < 1 {
			return Config{}, fmt.Errorf("config %s: width must be positive", path)
		}
		cfg.Dump.Width = raw.Dump.Width
	}

	if meta.IsDefined("info", "preview") {
		if raw.Info.Preview < 0 {
			return Config{}, fmt.Errorf("config %s: preview must not be negative", path)
		}
		cfg.Info.Preview = raw.Info.Preview
	}

	return cfg, nil
}
