package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRESUPUESTADOR_SERVER_PORT")
		os.Unsetenv("PRESUPUESTADOR_SERVER_ENVIRONMENT")
		os.Unsetenv("PRESUPUESTADOR_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PRESUPUESTADOR_SERVER_MAX_UPLOAD_MB")
		os.Unsetenv("PRESUPUESTADOR_MATCHER_API_KEY")
		os.Unsetenv("PRESUPUESTADOR_MATCHER_MODEL")
		os.Unsetenv("PRESUPUESTADOR_MATCHER_MAX_ATTEMPTS")
		os.Unsetenv("PRESUPUESTADOR_CATALOG_PATH")
		os.Unsetenv("PRESUPUESTADOR_MATCHING_SHORTLIST_LIMIT")
		os.Unsetenv("PRESUPUESTADOR_MATCHING_DEBUG")
	}

	// Run from a temp dir so a developer's local .env or config.yaml can't
	// leak into the assertions.
	originalDir, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(originalDir) })
	os.Chdir(t.TempDir())

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("PRESUPUESTADOR_MATCHER_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "3001" {
			t.Errorf("Server.Port = %s, want 3001", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Server.MaxUploadMB != 10 {
			t.Errorf("Server.MaxUploadMB = %d, want 10", cfg.Server.MaxUploadMB)
		}
		if cfg.Matcher.Model != "gemini-2.0-flash" {
			t.Errorf("Matcher.Model = %s, want gemini-2.0-flash", cfg.Matcher.Model)
		}
		if cfg.Matcher.MaxAttempts != 4 {
			t.Errorf("Matcher.MaxAttempts = %d, want 4", cfg.Matcher.MaxAttempts)
		}
		if cfg.Catalog.Path != "./catalog.json" {
			t.Errorf("Catalog.Path = %s, want ./catalog.json", cfg.Catalog.Path)
		}
		if cfg.Matching.ShortlistLimit != 300 {
			t.Errorf("Matching.ShortlistLimit = %d, want 300", cfg.Matching.ShortlistLimit)
		}
		if cfg.Matching.BackfillThreshold != 50 {
			t.Errorf("Matching.BackfillThreshold = %d, want 50", cfg.Matching.BackfillThreshold)
		}
		if cfg.Matching.BackfillLimit != 100 {
			t.Errorf("Matching.BackfillLimit = %d, want 100", cfg.Matching.BackfillLimit)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRESUPUESTADOR_SERVER_PORT", "9090")
		os.Setenv("PRESUPUESTADOR_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRESUPUESTADOR_MATCHER_API_KEY", "custom-api-key")
		os.Setenv("PRESUPUESTADOR_MATCHER_MODEL", "gemini-1.5-pro")
		os.Setenv("PRESUPUESTADOR_MATCHER_MAX_ATTEMPTS", "6")
		os.Setenv("PRESUPUESTADOR_CATALOG_PATH", "/data/catalogo.xlsx")
		os.Setenv("PRESUPUESTADOR_MATCHING_SHORTLIST_LIMIT", "150")
		os.Setenv("PRESUPUESTADOR_MATCHING_DEBUG", "true")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matcher.APIKey != "custom-api-key" {
			t.Errorf("Matcher.APIKey = %s, want custom-api-key", cfg.Matcher.APIKey)
		}
		if cfg.Matcher.Model != "gemini-1.5-pro" {
			t.Errorf("Matcher.Model = %s, want gemini-1.5-pro", cfg.Matcher.Model)
		}
		if cfg.Matcher.MaxAttempts != 6 {
			t.Errorf("Matcher.MaxAttempts = %d, want 6", cfg.Matcher.MaxAttempts)
		}
		if cfg.Catalog.Path != "/data/catalogo.xlsx" {
			t.Errorf("Catalog.Path = %s, want /data/catalogo.xlsx", cfg.Catalog.Path)
		}
		if cfg.Matching.ShortlistLimit != 150 {
			t.Errorf("Matching.ShortlistLimit = %d, want 150", cfg.Matching.ShortlistLimit)
		}
		if !cfg.Matching.Debug {
			t.Error("Matching.Debug = false, want true")
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
	})

	t.Run("fails validation for non-positive upload limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRESUPUESTADOR_MATCHER_API_KEY", "test-key")
		os.Setenv("PRESUPUESTADOR_SERVER_MAX_UPLOAD_MB", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero upload limit")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		err := loadEnvFile()
		if err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		envContent := `
# Comment line
TEST_VAR_1=value1
TEST_VAR_2=value2

# Another comment
TEST_VAR_3=value3
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value2" {
			t.Errorf("TEST_VAR_2 = %s, want value2", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_VAR_3") != "value3" {
			t.Errorf("TEST_VAR_3 = %s, want value3", os.Getenv("TEST_VAR_3"))
		}

		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)
		os.Chdir(t.TempDir())

		os.Setenv("TEST_OVERRIDE", "existing-value")

		envContent := "TEST_OVERRIDE=new-value"
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}

		os.Unsetenv("TEST_OVERRIDE")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{MaxUploadMB: 10},
			Matcher:  MatcherConfig{APIKey: "test-key", MaxAttempts: 4},
			Catalog:  CatalogConfig{Path: "./catalog.json"},
			Matching: MatchingConfig{ShortlistLimit: 300},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Matcher.APIKey = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails when catalog path is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Path = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty catalog path")
		}
	})

	t.Run("fails for zero matcher attempts", func(t *testing.T) {
		cfg := valid()
		cfg.Matcher.MaxAttempts = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero max attempts")
		}
	})

	t.Run("fails for non-positive shortlist limit", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.ShortlistLimit = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero shortlist limit")
		}
	})
}
