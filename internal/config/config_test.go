package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[WOOCOMMERCE]
URL = https://shop.example.com
Key = ck_file
Secret = cs_file
Timeout = 30

[STORAGE]
DataDir = /var/lib/orders

[EXPORT]
Channel = regional_csv
Channel = delivery_a_csv
IncludeContact = false
Separator = " / "

[DELIVERY]
PickupName = Shop
PickupPhone = +233200000000

[TELEGRAM]
BotToken = 123:abc
ChatID = -100200

[LOG]
Debug = 1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"WOOCOMMERCE_STORE_URL", "WOOCOMMERCE_CONSUMER_KEY", "WOOCOMMERCE_CONSUMER_SECRET", "WOOCOMMERCE_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	assert := assert.New(t)

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal("https://shop.example.com", cfg.WOOCOMMERCE.URL)
	assert.Equal("ck_file", cfg.WOOCOMMERCE.Key)
	assert.Equal(30*time.Second, cfg.RequestTimeout())
	assert.Equal("wc/v3", cfg.WOOCOMMERCE.Version)
	assert.Equal("/var/lib/orders", cfg.STORAGE.DataDir)
	assert.Equal("processed_orders.json", cfg.STORAGE.ProcessedOrders)
	assert.Equal([]string{ChannelRegionalCSV, ChannelDeliveryACSV}, cfg.EXPORT.Channel)
	assert.False(cfg.EXPORT.IncludeContact)
	assert.Equal(" / ", cfg.EXPORT.Separator)
	assert.Equal("Small", cfg.DELIVERY.ItemSize)
	assert.Equal("0", cfg.DELIVERY.DeliveryFee)
	assert.Equal("Not started", cfg.EXPORT.OrderStatus)
	assert.Equal(int64(-100200), cfg.TELEGRAM.ChatID)
	assert.Equal(1, cfg.LOG.Debug)
	assert.Equal("Africa/Accra", cfg.Location().String())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WOOCOMMERCE_STORE_URL", "https://other.example.com")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck_env")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs_env")
	t.Setenv("WOOCOMMERCE_TIMEOUT", "5")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com", cfg.WOOCOMMERCE.URL)
	assert.Equal(t, "ck_env", cfg.WOOCOMMERCE.Key)
	assert.Equal(t, "cs_env", cfg.WOOCOMMERCE.Secret)
	assert.Equal(t, 5, cfg.WOOCOMMERCE.Timeout)
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("WOOCOMMERCE_STORE_URL", "https://shop.example.com")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs")
	t.Setenv("WOOCOMMERCE_TIMEOUT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.WOOCOMMERCE.Timeout)
	assert.Equal(t, "data", cfg.STORAGE.DataDir)
	assert.Equal(t, []string{ChannelOrdersJSON, ChannelRegionalCSV, ChannelCustomerContacts, ChannelEmailsCSV, ChannelPhonesCSV}, cfg.EXPORT.Channel)
	assert.True(t, cfg.EXPORT.IncludeContact)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	cases := map[string]string{
		"no credentials": "[WOOCOMMERCE]\nURL = https://shop.example.com\n",
		"bad url":        "[WOOCOMMERCE]\nURL = not a url\nKey = k\nSecret = s\n",
		"zero timeout":   "[WOOCOMMERCE]\nURL = https://shop.example.com\nKey = k\nSecret = s\nTimeout = 0\n",
		"unknown channel": "[WOOCOMMERCE]\nURL = https://shop.example.com\nKey = k\nSecret = s\n" +
			"[EXPORT]\nChannel = fax\n",
		"bad timezone": "[WOOCOMMERCE]\nURL = https://shop.example.com\nKey = k\nSecret = s\n" +
			"[RUN]\nTimezone = Mars/Olympus\n",
		"bad delivery fee": "[WOOCOMMERCE]\nURL = https://shop.example.com\nKey = k\nSecret = s\n" +
			"[DELIVERY]\nDeliveryFee = free\n",
		"unknown section": "[WOOCOMMERCE]\nURL = https://shop.example.com\nKey = k\nSecret = s\n[RK7]\nURL = x\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadBadEnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("WOOCOMMERCE_TIMEOUT", "soon")

	_, err := Load(writeConfig(t, sample))
	assert.Error(t, err)
}
