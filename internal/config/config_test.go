package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/joho/godotenv"
	"github.com/vlatan/video-helper/internal/utils"
)

// Loads the project's .env file for all tests in this package
func TestMain(m *testing.M) {

	// Get the project root
	projectRoot, err := utils.GetProjectRoot()
	if err != nil {
		log.Fatal(err)
	}

	// Get the path to project's .env file and load the env vars
	// This is valid only for local test runs
	envPath := filepath.Join(projectRoot, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("failed to load .env file; %v", err)
	}

	os.Exit(m.Run())
}

func TestDefault(t *testing.T) {

	t.Setenv("YOUTUBE_BASE_URL", "http://example.com")

	expected := &Config{
		YouTubeBase:      "http://www.youtube.com",
		YouTubeImageBase: "http://i.ytimg.com/vi",
		VimeoPlayerBase:  "http://player.vimeo.com/video",
		VimeoAPIBase:     "http://vimeo.com/api/v2/video",
		VimeoAPIFormat:   PHP,
		HTTPTimeout:      30 * time.Second,
		MaxRetries:       1,
		RetryDelay:       time.Second,
		RateBurst:        1,
	}

	if diff := cmp.Diff(expected, Default()); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {

	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			"custom youtube base",
			map[string]string{"YOUTUBE_BASE_URL": "https://www.youtube-nocookie.com"},
			false,
			func(c *Config) bool { return c.YouTubeBase == "https://www.youtube-nocookie.com" },
		},
		{
			"json format",
			map[string]string{"VIMEO_API_FORMAT": "json"},
			false,
			func(c *Config) bool { return c.VimeoAPIFormat == JSON },
		},
		{
			"timeout disabled",
			map[string]string{"HTTP_TIMEOUT": "0s"},
			false,
			func(c *Config) bool { return c.HTTPTimeout == 0 },
		},
		{"unknown format", map[string]string{"VIMEO_API_FORMAT": "xml"}, true, nil},
		{"invalid timeout", map[string]string{"HTTP_TIMEOUT": "soon"}, true, nil},
		{"negative timeout", map[string]string{"HTTP_TIMEOUT": "-1s"}, true, nil},
		{"negative retry delay", map[string]string{"VIMEO_RETRY_DELAY": "-1s"}, true, nil},
		{
			"rate limited",
			map[string]string{"VIMEO_RATE_LIMIT": "30", "VIMEO_RATE_BURST": "5"},
			false,
			func(c *Config) bool { return c.RateLimit == 30 && c.RateBurst == 5 },
		},
		{"negative rate limit", map[string]string{"VIMEO_RATE_LIMIT": "-1"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := New()
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Fatalf("got error = %v, want error = %t", err, tt.wantErr)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {

	valid := Default()

	emptyBase := *valid
	emptyBase.VimeoPlayerBase = ""

	badFormat := *valid
	badFormat.VimeoAPIFormat = "yaml"

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", valid, false},
		{"empty base", &emptyBase, true},
		{"bad format", &badFormat, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("got error = %v, want error = %t", err, tt.wantErr)
			}
		})
	}
}
