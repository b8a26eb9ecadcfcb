/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command sigfwd-demo replays the slider and button example headlessly.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dirpx.dev/sigfwd"
	"dirpx.dev/sigfwd/config"
	"dirpx.dev/sigfwd/internal/demo"
)

func main() {
	var (
		values     []int
		configPath string
		verbose    bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:          "sigfwd-demo [flags]",
		Short:        "Replay the slider and button demo without a GUI",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			sigfwd.SetLogger(logger)

			if configPath != "" {
				cfg, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				sigfwd.SetConfig(cfg)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return demo.Run(ctx, demo.Options{
				Values: values,
				Out:    cmd.OutOrStdout(),
				Logger: logger,
			})
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", []int{25, 50, 75}, "slider values to emit, in order")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log connection attempts")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "how long to wait for the report")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
