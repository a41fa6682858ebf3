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
	"github.com/jn9e9/parsec-client-go/internal/fixture"
	"github.com/jn9e9/parsec-client-go/internal/wire"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <opcode>",
	Short: "Print one fixture suite",
	Long:  `Build and verify the suite for one operation kind and print the JSON document to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := wire.ParseOpcode(args[0])
		if err != nil {
			return err
		}

		suite, err := fixture.BuildSuite(op)
		if err != nil {
			return err
		}
		if err := fixture.Verify(suite); err != nil {
			return err
		}

		content, err := fixture.Marshal(suite)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
