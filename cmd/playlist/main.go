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
package playlist

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/existtv/existtv/cmd"
	"github.com/existtv/existtv/pkg/catalogserver"
	"github.com/existtv/existtv/pkg/logger"
	"github.com/existtv/existtv/pkg/m3uparser"
	"github.com/existtv/existtv/pkg/provider"

	"github.com/spf13/cobra"
)

var (
	outputFile string
	asJSON     bool
)

// playlistCmd fetches and parses the configured source once, reports the
// catalog stats and optionally dumps the normalized channels.
var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Fetch and inspect the configured playlist",
	Long:  ``,
	Run: func(c *cobra.Command, args []string) {

		config := catalogserver.NewServerConfig(cmd.ConfigFile)
		logger.Init(config.Get().LogFile)

		content, err := provider.Fetch(config.Get().Source, config.GroupingMode())
		if err != nil {
			c.PrintErrln(err)
			os.Exit(1)
		}

		channels := m3uparser.Parse(content, config.GroupingMode())
		if max := config.GetMaxChannels(); len(channels) > max {
			channels = channels[:max]
		}

		categories := make(map[string]int)
		countries := make(map[string]int)
		for _, ch := range channels {
			categories[ch.Category]++
			countries[ch.Country]++
		}

		c.Printf("Channels:   %d\n", len(channels))
		c.Printf("Categories: %d\n", len(categories))
		c.Printf("Countries:  %d\n", len(countries))

		if outputFile == "" {
			return
		}

		var out []byte
		if asJSON {
			out, err = json.MarshalIndent(channels, "", "  ")
			if err != nil {
				c.PrintErrln(err)
				os.Exit(1)
			}
		} else {
			var sb strings.Builder
			if err := m3uparser.WritePlaylist(&sb, channels); err != nil {
				c.PrintErrln(err)
				os.Exit(1)
			}
			out = []byte(sb.String())
		}

		if outputFile == "stdout" {
			c.Print(string(out))
			return
		}

		if err := os.WriteFile(outputFile, out, 0644); err != nil {
			c.PrintErrln("Error writing to output file")
			os.Exit(1)
		}
		logger.Infof("Wrote %d channels to %s", len(channels), outputFile)
	},
}

func init() {
	cmd.RootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (or \"stdout\")")
	playlistCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Write normalized channels as JSON instead of M3U")
}
