package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("GRPC_ADDR", "")

	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.Database.MaxConns != 20 || cfg.Database.MinConns != 5 {
		t.Errorf("pool sizes = %d/%d, want 20/5", cfg.Database.MaxConns, cfg.Database.MinConns)
	}
	if cfg.OCR.Tesseract != "tesseract" || cfg.OCR.TesseractLang != "eng" {
		t.Errorf("OCR defaults = %+v", cfg.OCR)
	}
	if cfg.OCR.PSM != 6 || cfg.OCR.OEM != 1 {
		t.Errorf("tesseract modes = psm %d oem %d, want 6/1", cfg.OCR.PSM, cfg.OCR.OEM)
	}
	if cfg.Parser.LegacyScoring {
		t.Errorf("LegacyScoring defaults to true")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/ecotally")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_DIAL_TIMEOUT", "10s")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("ECO_LEGACY_SCORING", "true")
	t.Setenv("CATEGORY_TABLES_PATH", "/etc/ecotally/tables.json")

	cfg := LoadConfig()

	if cfg.Database.DSN != "postgres://localhost/ecotally" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("MaxConns = %d, want 50", cfg.Database.MaxConns)
	}
	if cfg.Database.DialTimeout != 10*time.Second {
		t.Errorf("DialTimeout = %v, want 10s", cfg.Database.DialTimeout)
	}
	if cfg.Server.GRPCAddr != ":9090" {
		t.Errorf("GRPCAddr = %q, want :9090", cfg.Server.GRPCAddr)
	}
	if !cfg.Parser.LegacyScoring {
		t.Errorf("LegacyScoring = false, want true")
	}
	if cfg.Parser.TablesPath != "/etc/ecotally/tables.json" {
		t.Errorf("TablesPath = %q", cfg.Parser.TablesPath)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{Database: DatabaseConfig{DSN: "postgres://x"}, Server: ServerConfig{GRPCAddr: ":8080"}},
			wantErr: false,
		},
		{
			name:    "missing dsn",
			cfg:     Config{Server: ServerConfig{GRPCAddr: ":8080"}},
			wantErr: true,
		},
		{
			name:    "missing grpc addr",
			cfg:     Config{Database: DatabaseConfig{DSN: "postgres://x"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
