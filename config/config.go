package config

import (
	"net/url"
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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
	defaultTimezone           = "Asia/Dhaka"
	defaultAdminCookieName    = "admin_token"
	defaultCacheTTL           = 5 * time.Minute
	defaultCacheMaxEntries    = 1024
	defaultMaxUploadBytes     = 5 << 20
	defaultMaxImageDimension  = 2048
	defaultPublicBaseURL      = "http://localhost:3000"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Quota engine settings
	Quota *QuotaConfig `json:"quota" yaml:"quota"`

	// Cache for reference data (ad placements, plan catalogue)
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Media relay for image uploads
	Media *MediaConfig `json:"media" yaml:"media"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// Ad placement slots shown on the public site
	Ads *AdsConfig `json:"ads" yaml:"ads"`
}

type SecretKey struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	AdminCookieName string        `json:"adminCookieName" yaml:"adminCookieName"`
	SecureCookie    bool          `json:"secureCookie" yaml:"secureCookie"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QuotaConfig defines the calendar used for monthly counters and the
// limits applied when no default plan exists in the catalogue.
type QuotaConfig struct {
	Timezone string         `json:"timezone" yaml:"timezone"`
	FreePlan FreePlanLimits `json:"freePlan" yaml:"freePlan"`
}

// FreePlanLimits uses -1 for unlimited.
type FreePlanLimits struct {
	MaxCategories     int  `json:"maxCategories" yaml:"maxCategories"`
	MaxProducts       int  `json:"maxProducts" yaml:"maxProducts"`
	MaxOrdersPerMonth int  `json:"maxOrdersPerMonth" yaml:"maxOrdersPerMonth"`
	CanUploadImages   bool `json:"canUploadImages" yaml:"canUploadImages"`
}

// CacheConfig defines the reference data cache
type CacheConfig struct {
	// Provider type: "memory" or "redis"
	Provider string        `json:"provider" yaml:"provider"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`

	// MaxEntries bounds the in-memory provider; least recently used keys go first
	MaxEntries int         `json:"maxEntries" yaml:"maxEntries"`
	Redis      RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// MediaConfig defines where uploaded images are relayed to
type MediaConfig struct {
	// Provider type: "http" for the hosted media service or "blob" for a bucket URL
	Provider string `json:"provider" yaml:"provider"`

	// Media service endpoint and API key (http provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Folder   string `json:"folder" yaml:"folder"`

	// Bucket URL, e.g. file:///var/media, s3://bucket?region=ap-south-1, gs://bucket (blob provider)
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes    int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
	MaxImageDimension int   `json:"maxImageDimension" yaml:"maxImageDimension"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AdsConfig lists the slots ad placements may be shown in.
type AdsConfig struct {
	Slots []string `json:"slots" yaml:"slots"`
}

// DefaultAdSlots are used when no slots are configured.
func DefaultAdSlots() []string {
	return []string{"home", "storefront", "dashboard"}
}

// ShopConfig holds storefront URL settings used for QR codes and invoice links.
type ShopConfig struct {
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// StorefrontURL is the public page of a shop.
func (s *ShopConfig) StorefrontURL(slug string) string {
	return s.baseURL() + "/" + url.PathEscape(slug)
}

// InvoiceURL is the public page of a cash memo.
func (s *ShopConfig) InvoiceURL(token string) string {
	return s.baseURL() + "/invoice/" + url.PathEscape(token)
}

func (s *ShopConfig) baseURL() string {
	if s == nil || s.PublicBaseURL == "" {
		return defaultPublicBaseURL
	}

	return strings.TrimRight(s.PublicBaseURL, "/")
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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AdminCookieName == "" {
		cfg.Auth.AdminCookieName = defaultAdminCookieName
	}

	if cfg.Quota == nil {
		cfg.Quota = &QuotaConfig{FreePlan: DefaultFreePlanLimits()}
	}
	if cfg.Quota.Timezone == "" {
		cfg.Quota.Timezone = defaultTimezone
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Cache.MaxEntries <= 0 {
		cfg.Cache.MaxEntries = defaultCacheMaxEntries
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.MaxUploadBytes <= 0 {
		cfg.Media.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Media.MaxImageDimension <= 0 {
		cfg.Media.MaxImageDimension = defaultMaxImageDimension
	}

	if cfg.Shop == nil {
		cfg.Shop = &ShopConfig{}
	}
	if cfg.Shop.PublicBaseURL == "" {
		cfg.Shop.PublicBaseURL = defaultPublicBaseURL
	}

	if cfg.Ads == nil {
		cfg.Ads = &AdsConfig{}
	}
	if len(cfg.Ads.Slots) == 0 {
		cfg.Ads.Slots = DefaultAdSlots()
	}
}

// DefaultFreePlanLimits returns the limits applied when the plan catalogue has no default plan.
func DefaultFreePlanLimits() FreePlanLimits {
	return FreePlanLimits{
		MaxCategories:     5,
		MaxProducts:       20,
		MaxOrdersPerMonth: 50,
		CanUploadImages:   false,
	}
}

// Location resolves the quota timezone, falling back to UTC when it is unknown.
func (q *QuotaConfig) Location() *time.Location {
	if q == nil || q.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
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
