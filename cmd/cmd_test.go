package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jn9e9/parsec-client-go/internal/test"
)

// execute runs rootCmd with args and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	origOut := rootCmd.OutOrStdout()
	origErr := rootCmd.ErrOrStderr()

	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(origOut)
		rootCmd.SetErr(origErr)
		_ = generateCmd.Flags().Set("output", "")
		_ = generateCmd.Flags().Set("workers", "0")
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "testdata")

	if _, err := execute(t, "generate", "--output", outputDir, "--workers", "2"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	want := test.GoldenNames(t)
	slices.Sort(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("written files mismatch (-want +got):\n%s", diff)
	}

	for _, name := range want {
		// #nosec G304 - path is built from t.TempDir() and golden names
		content, err := os.ReadFile(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.ReadGolden(t, name), string(content)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestGenerateCommand_Subset(t *testing.T) {
	outputDir := t.TempDir()

	if _, err := execute(t, "generate", "-o", outputDir, "list_clients", "27", "--log-level", "debug"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("log-level", "info") })

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "list_clients.json" {
		t.Fatalf("written files = %v, want [list_clients.json]", entries)
	}
}

func TestGenerateCommand_OutputDirFromEnv(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("PARSEC_TESTGEN_OUTPUT_DIR", outputDir)

	if _, err := execute(t, "generate", "Ping"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "ping.json")); err != nil {
		t.Fatalf("expected ping.json in %s: %v", outputDir, err)
	}
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown opcode", []string{"list_everything"}},
		{"no fixtures for opcode", []string{"list_clients", "psa_generate_key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "out")

			args := append([]string{"generate", "-o", outputDir}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Fatal("execute succeeded, want an error")
			}
			if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
				t.Fatalf("output directory was created after a failed build: %v", err)
			}
		})
	}
}

func TestGenerateCommand_BadWorkersEnv(t *testing.T) {
	t.Setenv("PARSEC_TESTGEN_WORKERS", "0")

	if _, err := execute(t, "generate", "-o", t.TempDir()); err == nil {
		t.Fatal("execute succeeded, want a configuration error")
	}
}

func TestShowCommand(t *testing.T) {
	got, err := execute(t, "show", "ListClients")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := test.ReadGolden(t, "list_clients.json")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestShowCommand_Unsupported(t *testing.T) {
	if _, err := execute(t, "show", "0x02"); err == nil {
		t.Fatal("execute succeeded, want an error")
	}
}

func TestListCommand(t *testing.T) {
	got, err := execute(t, "list")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := "Ping          0x01  ping.json\n" +
		"ListOpcodes   0x09  list_opcodes.json\n" +
		"ListClients   0x1b  list_clients.json\n" +
		"DeleteClient  0x1c  delete_client.json\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
