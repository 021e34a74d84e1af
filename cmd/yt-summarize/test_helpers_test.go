package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// configEnvVars lists every environment variable the config loader honors.
// Tests blank them so overrides never leak in from the invoking shell.
var configEnvVars = []string{
	"OPENROUTER_API_KEY",
	"OPENROUTER_MODEL",
	"YT_SUMMARIZE_API_KEY",
	"YT_SUMMARIZE_MODEL",
	"YT_SUMMARIZE_OUTPUT_DIR",
	"YT_SUMMARIZE_LOG_LEVEL",
	"YT_SUMMARIZE_LOG_FORMAT",
}

type cliTestEnv struct {
	homeDir    string
	configPath string
}

// setupCLITestEnv points HOME at a temp directory so the default config path
// resolves inside the test sandbox, and scrubs the override variables.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	homeDir := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, name := range configEnvVars {
		t.Setenv(name, "")
	}

	configPath := filepath.Join(homeDir, ".config", "yt-summarize", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}

	return &cliTestEnv{homeDir: homeDir, configPath: configPath}
}

func writeConfig(t *testing.T, env *cliTestEnv, content string) {
	t.Helper()
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// writeServerConfig writes a config file pointing every endpoint at local
// test servers so no command touches the real network.
func writeServerConfig(t *testing.T, env *cliTestEnv, videoURL, llmURL, apiKey, outputDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[output]\ndirectory = %q\n\n[llm]\napi_key = %q\nbase_url = %q\n\n[transcript]\nwatch_base_url = %q\noembed_base_url = %q\n",
		outputDir,
		apiKey,
		llmURL,
		videoURL,
		videoURL+"/oembed",
	)
	writeConfig(t, env, content)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// Always non-nil, or cobra falls back to os.Args from the test binary.
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
