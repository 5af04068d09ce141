package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !bytes.Contains([]byte(output), []byte("v1.0.0")) ||
		!bytes.Contains([]byte(output), []byte("abcd1234")) ||
		!bytes.Contains([]byte(output), []byte("2026-08-29")) {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" ||
		cfg.pgPassword != "password" || cfg.pgDB != "contactbook" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaAddr != "" || cfg.kafkaTopic != "contact-events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.jwtSecretKey != "my_super_secret_key" ||
		cfg.jwtAccessExpSecond != 900 || cfg.jwtRefreshExpSecond != 604800 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.birthdayWindowDays != 7 || cfg.rateLimitPerMinute != 10 {
		t.Errorf("unexpected domain config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "audit")

	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_FROM", "noreply@example.com")

	os.Setenv("S3_ENDPOINT", "http://minio.example.com:9000")
	os.Setenv("S3_BUCKET", "pictures")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_ACCESS_EXP_SECOND", "300")
	os.Setenv("JWT_REFRESH_EXP_SECOND", "3600")

	os.Setenv("BIRTHDAY_WINDOW_DAYS", "14")
	os.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" ||
		cfg.pgPassword != "secret" || cfg.pgDB != "mydb" {
		t.Errorf("unexpected postgres config")
	}
	if cfg.kafkaAddr != "kafka.example.com:9092" || cfg.kafkaTopic != "audit" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.smtpHost != "smtp.example.com" || cfg.smtpFrom != "noreply@example.com" {
		t.Errorf("unexpected smtp config")
	}
	if cfg.s3Endpoint != "http://minio.example.com:9000" || cfg.s3Bucket != "pictures" {
		t.Errorf("unexpected s3 config")
	}
	if cfg.jwtSecretKey != "supersecret" || cfg.jwtAccessExpSecond != 300 || cfg.jwtRefreshExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.birthdayWindowDays != 14 || cfg.rateLimitPerMinute != 30 {
		t.Errorf("unexpected domain config")
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}

// Full startup and graceful shutdown against real Postgres and Redis.
// Kafka, SMTP and S3 stay unconfigured. Those integrations are optional.
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config{
		appHost:             "127.0.0.1",
		appPort:             "8086",
		logLevel:            "debug",
		pgHost:              pgHost,
		pgPort:              pgPort.Int(),
		pgUser:              "user",
		pgPassword:          "password",
		pgDB:                "testdb",
		pgMaxOpenConns:      5,
		pgMaxIdleConns:      2,
		redisHost:           redisHost,
		redisPort:           redisPort.Int(),
		jwtSecretKey:        "testsecret",
		jwtAccessExpSecond:  900,
		jwtRefreshExpSecond: 3600,
		birthdayWindowDays:  7,
		rateLimitPerMinute:  10,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
	}
}
