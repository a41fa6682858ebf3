/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

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
package cmd

import (
	"os"

	"github.com/jn9e9/parsec-client-go/internal/config"
	"github.com/jn9e9/parsec-client-go/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parsec-testgen",
	Short: "Generate Parsec wire protocol test fixtures",
	Long: `Build golden request/response fixtures for the Parsec client conformance tests.
Each supported operation gets one JSON document holding base64 request and response
envelopes next to the logical values they encode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			if loaded.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
				return err
			}
		}

		l, err := logging.New(loaded.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (default from PARSEC_TESTGEN_LOG_LEVEL)")
}
