package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"quota": map[string]any{
			"freePlan": map[string]any{
				"maxOrdersPerMonth": 50,
			},
		},
		"media": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "QUOTA_FREEPLAN_MAXORDERSPERMONTH", want: "quota.freePlan.maxOrdersPerMonth"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAdminCookieName, cfg.Auth.AdminCookieName)
	assert.Equal(t, defaultTimezone, cfg.Quota.Timezone)
	assert.Equal(t, DefaultFreePlanLimits(), cfg.Quota.FreePlan)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, defaultCacheMaxEntries, cfg.Cache.MaxEntries)
	assert.Equal(t, DefaultAdSlots(), cfg.Ads.Slots)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.Media.MaxUploadBytes)
	assert.Equal(t, defaultMaxImageDimension, cfg.Media.MaxImageDimension)
	assert.NotNil(t, cfg.Shop)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Quota: &QuotaConfig{Timezone: "UTC", FreePlan: FreePlanLimits{MaxCategories: 1}},
		Cache: &CacheConfig{TTL: time.Minute, MaxEntries: 10},
		Ads:   &AdsConfig{Slots: []string{"sidebar"}},
	}
	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Cache.MaxEntries)
	assert.Equal(t, []string{"sidebar"}, cfg.Ads.Slots)

	assert.Equal(t, "UTC", cfg.Quota.Timezone)
	assert.Equal(t, 1, cfg.Quota.FreePlan.MaxCategories)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestQuotaConfig_Location(t *testing.T) {
	var nilCfg *QuotaConfig
	assert.Equal(t, time.UTC, nilCfg.Location())
	assert.Equal(t, time.UTC, (&QuotaConfig{Timezone: "Not/AZone"}).Location())

	loc := (&QuotaConfig{Timezone: "Asia/Dhaka"}).Location()
	assert.Equal(t, "Asia/Dhaka", loc.String())
}
