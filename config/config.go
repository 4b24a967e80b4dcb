package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// DefaultSolverTimeLimit applies when no time limit is configured or requested.
const DefaultSolverTimeLimit = 60 * time.Second

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultSolverBackend      = "cbc"
	defaultMatrixWorkers      = 8
	defaultMaxNodes           = 200
	defaultExportPrefix       = "plans/"
	defaultCacheTTL           = 24 * time.Hour
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// Solve requests allowed per second per client, 0 disables the limiter
		RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Solver configures the external MILP engine
	Solver *SolverConfig `json:"solver" yaml:"solver"`

	// Planning holds fleet defaults and pipeline limits
	Planning *PlanningConfig `json:"planning" yaml:"planning"`

	// Cache configures the distance matrix cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Export configures where route artifacts are uploaded
	Export *ExportConfig `json:"export" yaml:"export"`

	// QRCode configuration for route sheet QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for plan events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig toggles bearer token checks on the API group
type AuthConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Issuer  string `json:"issuer" yaml:"issuer"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SolverConfig defines how the MILP engine binary is invoked
type SolverConfig struct {
	// Backend selects the engine: "cbc" or "highs"
	Backend string `json:"backend" yaml:"backend"`

	// BinaryPath overrides the executable looked up in PATH
	BinaryPath string `json:"binaryPath" yaml:"binaryPath"`

	// TimeLimit is the cooperative wall-clock budget handed to the engine
	TimeLimit time.Duration `json:"timeLimit" yaml:"timeLimit"`

	// Verbose forwards the engine log to the service logger
	Verbose bool `json:"verbose" yaml:"verbose"`

	// WorkDir holds model and solution files, defaults to the OS temp dir
	WorkDir string `json:"workDir" yaml:"workDir"`

	// KeepFiles leaves model and solution files on disk for inspection
	KeepFiles bool `json:"keepFiles" yaml:"keepFiles"`
}

// PlanningConfig defines fleet defaults and request limits
type PlanningConfig struct {
	DefaultVehicleCount    int     `json:"defaultVehicleCount" yaml:"defaultVehicleCount"`
	DefaultVehicleCapacity float64 `json:"defaultVehicleCapacity" yaml:"defaultVehicleCapacity"`

	// MatrixWorkers bounds the goroutines computing distance rows
	MatrixWorkers int `json:"matrixWorkers" yaml:"matrixWorkers"`

	// MaxNodes rejects requests the MTZ model cannot realistically solve
	MaxNodes int `json:"maxNodes" yaml:"maxNodes"`
}

// CacheConfig defines the Redis distance matrix cache, empty address disables it
type CacheConfig struct {
	RedisAddr     string        `json:"redisAddr" yaml:"redisAddr"`
	RedisPassword string        `json:"redisPassword" yaml:"redisPassword"`
	RedisDB       int           `json:"redisDb" yaml:"redisDb"`
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
}

// ExportConfig defines the blob bucket for route artifacts.
// BucketURL follows gocloud.dev conventions, e.g. file:///var/lib/fleetplan or gs://bucket
type ExportConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the solve worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides follow the YAML casing: SOLVER_TIMELIMIT -> solver.timeLimit
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

// New loads .env (when present) and config.yaml, then fills defaults.
func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil pointers.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Solver == nil {
		cfg.Solver = &SolverConfig{}
	}
	if cfg.Solver.Backend == "" {
		cfg.Solver.Backend = defaultSolverBackend
	}
	if cfg.Solver.TimeLimit <= 0 {
		cfg.Solver.TimeLimit = DefaultSolverTimeLimit
	}
	if cfg.Planning == nil {
		cfg.Planning = &PlanningConfig{}
	}
	if cfg.Planning.MatrixWorkers <= 0 {
		cfg.Planning.MatrixWorkers = defaultMatrixWorkers
	}
	if cfg.Planning.MaxNodes <= 0 {
		cfg.Planning.MaxNodes = defaultMaxNodes
	}
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Export == nil {
		cfg.Export = &ExportConfig{}
	}
	if cfg.Export.Prefix == "" {
		cfg.Export.Prefix = defaultExportPrefix
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
