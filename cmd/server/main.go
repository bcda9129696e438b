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
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/existtv/existtv/cmd"
	"github.com/existtv/existtv/pkg/catalogserver"
	"github.com/existtv/existtv/pkg/logger"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the channel catalog server",
	Long:  `Start the HTTP server that fetches the configured playlist and serves the browsable channel catalog and player.`,
	Run: func(c *cobra.Command, args []string) {

		config := catalogserver.NewServerConfig(cmd.ConfigFile)
		logger.Init(config.Get().LogFile)

		logger.Infof("Starting catalog server")
		logger.Infof("Config: %s", config.GetPath())
		logger.Infof("Provider: %s", config.Get().Source.Provider)
		logger.Infof("Port: %d", config.GetPort())

		srv, err := catalogserver.NewServer(config)
		if err != nil {
			c.PrintErrln(err)
			os.Exit(1)
		}
		defer srv.Close()

		// A failed fetch leaves the catalog empty rather than aborting; the
		// health endpoint reports unavailable until a load succeeds.
		if err := srv.LoadChannels(); err != nil {
			logger.Warnf("Failed to load channels, starting with an empty catalog: %v", err)
		}

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", config.GetPort()),
			Handler: srv.Handler(),
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		go func() {
			logger.Infof("Server listening on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Errorf("Server failed: %v", err)
			}
		}()

		<-quit // Wait for SIGINT or SIGTERM

		logger.Infof("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorf("Server forced to shutdown: %v", err)
		}

		logger.Infof("Server exiting")
	},
}

func init() {
	cmd.RootCmd.AddCommand(serverCmd)
}
