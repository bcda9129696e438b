/*
Copyright © 2025 ExistTV Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package catalogserver

import (
	"encoding/json"
	"os"

	"github.com/existtv/existtv/pkg/m3uparser"
	"github.com/existtv/existtv/pkg/provider"
)

type GeoIPConfig struct {
	Database         string   `json:"database,omitempty"`
	Whitelist        []string `json:"whitelist,omitempty"`
	InternalNetworks []string `json:"internal_networks,omitempty"`
}

type SecurityConfig struct {
	GeoIP              GeoIPConfig `json:"geoip,omitempty"`
	AllowedCORSDomains []string    `json:"allowed_cors_domains,omitempty"`
}

type ConfigData struct {
	Port          int                   `json:"port"`
	Source        provider.SourceConfig `json:"source"`
	Grouping      string                `json:"grouping,omitempty"` // "category" or "country"
	MaxChannels   int                   `json:"max_channels,omitempty"`
	FavoritesFile string                `json:"favorites_file,omitempty"`
	AssetsDir     string                `json:"assets_dir,omitempty"`
	LogFile       string                `json:"log_file,omitempty"`
	Security      SecurityConfig        `json:"security,omitempty"`
}

type ServerConfig struct {
	path string
	data ConfigData
}

// NewServerConfig loads the config at path, writing one with defaults on
// first run.
func NewServerConfig(path string) *ServerConfig {
	c := &ServerConfig{
		path: path,
	}

	if err := c.Load(path); err != nil {
		if os.IsNotExist(err) {
			c.data = ConfigData{
				Port:          8080,
				Source:        provider.SourceConfig{Provider: "iptv.org", Settings: json.RawMessage("{}")},
				Grouping:      "category",
				MaxChannels:   15000,
				FavoritesFile: "favorites.json",
				AssetsDir:     "assets",
				Security: SecurityConfig{
					GeoIP: GeoIPConfig{
						Whitelist:        []string{},
						InternalNetworks: []string{},
					},
					AllowedCORSDomains: []string{},
				},
			}
			if err := c.Save(); err != nil {
				panic(err)
			}
		} else {
			panic(err)
		}
	}
	return c
}

func (c *ServerConfig) Load(path string) error {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	err = json.NewDecoder(file).Decode(&c.data)
	if err != nil {
		return err
	}

	c.path = path
	return nil
}

func (c *ServerConfig) Save() error {
	file, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c.data)
}

func (c *ServerConfig) Get() ConfigData {
	return c.data
}

func (c *ServerConfig) Set(data ConfigData) {
	c.data = data
}

func (c *ServerConfig) GetPath() string {
	return c.path
}

func (c *ServerConfig) GetPort() int {
	if c.data.Port == 0 {
		return 8080
	}
	return c.data.Port
}

func (c *ServerConfig) GetMaxChannels() int {
	if c.data.MaxChannels == 0 {
		return 15000
	}
	return c.data.MaxChannels
}

func (c *ServerConfig) GetAssetsDir() string {
	if c.data.AssetsDir == "" {
		return "assets"
	}
	return c.data.AssetsDir
}

// GroupingMode maps the configured grouping string to the parser's explicit
// grouping switch.
func (c *ServerConfig) GroupingMode() m3uparser.Grouping {
	if c.data.Grouping == "country" {
		return m3uparser.GroupByCountry
	}
	return m3uparser.GroupByCategory
}
