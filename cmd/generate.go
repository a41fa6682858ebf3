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
	"context"
	"slices"

	"github.com/jn9e9/parsec-client-go/internal/fixture"
	"github.com/jn9e9/parsec-client-go/internal/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [opcode...]",
	Short: "Write fixture suites to a directory",
	Long: `Build, verify and write one JSON suite per operation kind.
Opcodes may be given by name (ListClients, list_clients) or number; with no
arguments every supported kind is generated. Nothing is written unless every
requested suite builds and verifies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		workers, err := cmd.Flags().GetInt("workers")
		if err != nil {
			return err
		}
		if workers < 1 {
			workers = cfg.Workers
		}

		ops, err := parseOpcodes(args)
		if err != nil {
			return err
		}

		suites, err := buildSuites(cmd.Context(), ops, workers)
		if err != nil {
			return err
		}

		w := fixture.NewWriter(outputDir)
		for _, suite := range suites {
			path, err := w.WriteSuite(suite)
			if err != nil {
				return err
			}
			logger.Info("wrote suite",
				zap.Stringer("opcode", suite.OpCode),
				zap.Int("cases", len(suite.Tests)),
				zap.String("path", path),
			)
		}
		return nil
	},
}

func parseOpcodes(args []string) ([]wire.Opcode, error) {
	if len(args) == 0 {
		return fixture.Kinds(), nil
	}

	ops := make([]wire.Opcode, 0, len(args))
	for _, arg := range args {
		op, err := wire.ParseOpcode(arg)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(ops, op) {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// buildSuites builds and verifies every suite, at most workers at a time.
// Suites come back in the order of ops.
func buildSuites(ctx context.Context, ops []wire.Opcode, workers int) ([]*fixture.TestSuite, error) {
	suites := make([]*fixture.TestSuite, len(ops))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, op := range ops {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("building suite", zap.Stringer("opcode", op))

			suite, err := fixture.BuildSuite(op)
			if err != nil {
				return err
			}
			if err := fixture.Verify(suite); err != nil {
				return err
			}
			suites[i] = suite
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return suites, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "directory to write suites to (default from PARSEC_TESTGEN_OUTPUT_DIR)")
	generateCmd.Flags().Int("workers", 0, "suites built in parallel (default from PARSEC_TESTGEN_WORKERS)")
}
