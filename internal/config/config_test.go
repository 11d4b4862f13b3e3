package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	appErrors "memento/internal/errors"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != DefaultAPIBaseURL {
		t.Fatalf("expected default %s to be %q, got %q", KeyAPIBaseURL, DefaultAPIBaseURL, got)
	}
	if got := GetInt(KeyAPITimeoutSeconds); got != DefaultAPITimeoutSeconds {
		t.Fatalf("expected default %s to be %d, got %d", KeyAPITimeoutSeconds, DefaultAPITimeoutSeconds, got)
	}
	if got := GetInt(KeyConversationsFetchLimit); got != DefaultCollectionLimit {
		t.Fatalf("expected default %s to be %d, got %d", KeyConversationsFetchLimit, DefaultCollectionLimit, got)
	}
	if got := GetInt(KeyPeopleDisplayLimit); got != DefaultCollectionLimit {
		t.Fatalf("expected default %s to be %d, got %d", KeyPeopleDisplayLimit, DefaultCollectionLimit, got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected default %s to be false", KeyDebug)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".memento"))
	projectCfg := filepath.Join(projectDir, ".memento", "config.yaml")
	writeFile(t, projectCfg, `
api:
  base-url: http://project.local:5000
output:
  format: plain
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
api:
  base-url: http://user.local:5000
output:
  format: light
people:
  display-limit: 3
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != "http://project.local:5000" {
		t.Fatalf("expected project config to win for %s, got %q", KeyAPIBaseURL, got)
	}
	if got := GetString(KeyOutputFormat); got != "plain" {
		t.Fatalf("expected project output format, got %q", got)
	}
	if got := GetInt(KeyPeopleDisplayLimit); got != 3 {
		t.Fatalf("expected user people limit to survive merge, got %d", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
api:
  base-url: http://file.local:5000
`)

	t.Setenv("MEMENTO_API_BASE_URL", "http://env.local:5000")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != "http://env.local:5000" {
		t.Fatalf("expected env to override config file, got %q", got)
	}

	if err := ApplyOverrides(map[string]any{KeyAPIBaseURL: "http://flag.local:5000"}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetString(KeyAPIBaseURL); got != "http://flag.local:5000" {
		t.Fatalf("expected override to win, got %q", got)
	}
}

func TestAPITimeoutFallsBackWhenNonPositive(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := Set(KeyAPITimeoutSeconds, 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := APITimeout(); got != DefaultAPITimeoutSeconds*time.Second {
		t.Fatalf("expected fallback timeout, got %v", got)
	}
}

func TestCredentialsPathDefault(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	path, err := CredentialsPath()
	if err != nil {
		t.Fatalf("CredentialsPath returned error: %v", err)
	}
	if filepath.Base(path) != "credentials.db" {
		t.Fatalf("unexpected default credentials path: %s", path)
	}

	if err := Set(KeyCredentialsPath, "/tmp/custom.db"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	path, err = CredentialsPath()
	if err != nil {
		t.Fatalf("CredentialsPath returned error: %v", err)
	}
	if path != "/tmp/custom.db" {
		t.Fatalf("expected configured credentials path, got %s", path)
	}
}

func TestCredentialsPathHomeUnavailable(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	// With no configured path and no resolvable home, the fallback fails.
	t.Setenv("HOME", "")
	_, err := CredentialsPath()
	if err == nil {
		t.Fatal("expected error when home directory cannot be determined")
	}
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error code, got %v", err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
