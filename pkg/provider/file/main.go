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
package file

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Source string `json:"source"`
}

type FileProvider struct {
	config Config
}

func NewFileProvider(config json.RawMessage) (*FileProvider, error) {
	cfg := Config{}
	if err := json.Unmarshal(config, &cfg); err != nil {
		return nil, fmt.Errorf("file provider: invalid config: %w", err)
	}
	if cfg.Source == "" {
		return nil, fmt.Errorf("file provider: missing source path")
	}
	return &FileProvider{config: cfg}, nil
}

func (p *FileProvider) Name() string {
	return "file"
}

func (p *FileProvider) Fetch() (string, error) {
	data, err := os.ReadFile(p.config.Source)
	if err != nil {
		return "", fmt.Errorf("read playlist %s: %w", p.config.Source, err)
	}
	return string(data), nil
}
