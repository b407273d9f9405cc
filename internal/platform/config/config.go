package config

import (
	"os"
	"strconv"
	"strings"
)

// Config reúne la configuración del proceso leída del entorno.
type Config struct {
	Addr  string
	DBDSN string

	SeedDemo bool
	Seed     uint64 // 0 = según la hora

	CORSOrigins []string

	Blob BlobConfig
}

type BlobConfig struct {
	Driver     string // memory | s3
	S3Bucket   string
	S3Region   string
	S3Endpoint string
	PathStyle  bool

	// Credenciales estáticas (AWS_*). Vacías = cadena default del SDK.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// FromEnv lee:
// - PORT (default 8080)
// - DB_DSN (opcional; habilita el sink de Postgres)
// - HERDBOOK_SEED_DEMO (default true), HERDBOOK_SEED
// - HERDBOOK_CORS_ORIGINS (lista separada por comas, default *)
// - HERDBOOK_BLOB_DRIVER (memory|s3) y HERDBOOK_BLOB_S3_*
// - AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN (driver s3)
//
// LOG_LEVEL, LOG_FORMAT y APP_NAME los lee logger.NewFromEnv.
func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) Config {
	cfg := Config{
		Addr:        ":8080",
		DBDSN:       strings.TrimSpace(get("DB_DSN")),
		SeedDemo:    parseBool(get("HERDBOOK_SEED_DEMO"), true),
		CORSOrigins: splitList(get("HERDBOOK_CORS_ORIGINS")),
		Blob: BlobConfig{
			Driver:     strings.ToLower(strings.TrimSpace(get("HERDBOOK_BLOB_DRIVER"))),
			S3Bucket:   strings.TrimSpace(get("HERDBOOK_BLOB_S3_BUCKET")),
			S3Region:   strings.TrimSpace(get("HERDBOOK_BLOB_S3_REGION")),
			S3Endpoint: strings.TrimSpace(get("HERDBOOK_BLOB_S3_ENDPOINT")),
			PathStyle:  parseBool(get("HERDBOOK_BLOB_S3_PATH_STYLE"), false),

			AccessKeyID:     strings.TrimSpace(get("AWS_ACCESS_KEY_ID")),
			SecretAccessKey: strings.TrimSpace(get("AWS_SECRET_ACCESS_KEY")),
			SessionToken:    strings.TrimSpace(get("AWS_SESSION_TOKEN")),
		},
	}

	if v := strings.TrimSpace(get("PORT")); v != "" {
		cfg.Addr = ":" + v
	}
	if v := strings.TrimSpace(get("HERDBOOK_SEED")); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.Blob.Driver == "" {
		cfg.Blob.Driver = "memory"
	}
	return cfg
}

func parseBool(v string, def bool) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
