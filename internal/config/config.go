package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/gcfg.v1"
)

const DefaultPath = "./config/config.ini"

// Channel names accepted in [EXPORT] Channel.
const (
	ChannelOrdersJSON       = "orders_json"
	ChannelRegionalCSV      = "regional_csv"
	ChannelDeliveryACSV     = "delivery_a_csv"
	ChannelDeliveryBCSV     = "delivery_b_csv"
	ChannelCustomerContacts = "customer_contacts_csv"
	ChannelEmailsCSV        = "emails_csv"
	ChannelPhonesCSV        = "phones_csv"
	ChannelAllOrdersJSON    = "all_orders_json"
	ChannelOrdersCSV        = "orders_csv"
)

var Channels = []string{
	ChannelOrdersJSON,
	ChannelRegionalCSV,
	ChannelDeliveryACSV,
	ChannelDeliveryBCSV,
	ChannelCustomerContacts,
	ChannelEmailsCSV,
	ChannelPhonesCSV,
	ChannelAllOrdersJSON,
	ChannelOrdersCSV,
}

type (
	Config struct {
		WOOCOMMERCE struct {
			URL             string
			Key             string
			Secret          string
			Timeout         int
			Version         string
			QueryStringAuth bool
		}
		STORAGE struct {
			DataDir         string
			ProcessedOrders string
			Customers       string
		}
		EXPORT struct {
			Channel        []string
			IncludeContact bool
			Separator      string
			OrderStatus    string
			CreatedBy      string
		}
		DELIVERY struct {
			PickupName     string
			PickupPhone    string
			PickupLocation string
			ItemSize       string
			DeliveryFee    string
		}
		RUN struct {
			Timezone string
		}
		TELEGRAM struct {
			BotToken string
			ChatID   int64
		}
		LOG struct {
			Debug int
			Dir   string
		}
	}
)

// Default returns the configuration used when no config.ini is present.
func Default() *Config {
	cfg := new(Config)
	cfg.WOOCOMMERCE.Timeout = 20
	cfg.WOOCOMMERCE.Version = "wc/v3"
	cfg.WOOCOMMERCE.QueryStringAuth = true
	cfg.STORAGE.DataDir = "data"
	cfg.STORAGE.ProcessedOrders = "processed_orders.json"
	cfg.STORAGE.Customers = "customers_database.json"
	cfg.EXPORT.Separator = ", "
	cfg.EXPORT.IncludeContact = true
	cfg.EXPORT.OrderStatus = "Not started"
	cfg.DELIVERY.ItemSize = "Small"
	cfg.DELIVERY.DeliveryFee = "0"
	cfg.RUN.Timezone = "Africa/Accra"
	cfg.LOG.Dir = "logs"
	return cfg
}

// Load reads the ini file at path on top of the defaults, applies the
// environment overrides and validates the result. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		err = gcfg.ReadFileInto(cfg, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed gcfg.ReadFileInto(%s)", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed os.Stat(%s)", path)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if len(cfg.EXPORT.Channel) == 0 {
		cfg.EXPORT.Channel = []string{
			ChannelOrdersJSON,
			ChannelRegionalCSV,
			ChannelCustomerContacts,
			ChannelEmailsCSV,
			ChannelPhonesCSV,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("WOOCOMMERCE_STORE_URL"); v != "" {
		c.WOOCOMMERCE.URL = v
	}
	if v := os.Getenv("WOOCOMMERCE_CONSUMER_KEY"); v != "" {
		c.WOOCOMMERCE.Key = v
	}
	if v := os.Getenv("WOOCOMMERCE_CONSUMER_SECRET"); v != "" {
		c.WOOCOMMERCE.Secret = v
	}
	if v := os.Getenv("WOOCOMMERCE_TIMEOUT"); v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "failed strconv.Atoi(WOOCOMMERCE_TIMEOUT=%s)", v)
		}
		c.WOOCOMMERCE.Timeout = timeout
	}
	return nil
}

func (c *Config) Validate() error {
	woo := &c.WOOCOMMERCE
	err := validation.ValidateStruct(woo,
		validation.Field(&woo.URL, validation.Required, is.URL),
		validation.Field(&woo.Key, validation.Required),
		validation.Field(&woo.Secret, validation.Required),
		validation.Field(&woo.Timeout, validation.Required, validation.Min(1)),
		validation.Field(&woo.Version, validation.Required),
	)
	if err != nil {
		return errors.Wrap(err, "WOOCOMMERCE")
	}

	storage := &c.STORAGE
	err = validation.ValidateStruct(storage,
		validation.Field(&storage.DataDir, validation.Required),
		validation.Field(&storage.ProcessedOrders, validation.Required),
		validation.Field(&storage.Customers, validation.Required),
	)
	if err != nil {
		return errors.Wrap(err, "STORAGE")
	}

	known := make([]interface{}, 0, len(Channels))
	for _, name := range Channels {
		known = append(known, name)
	}
	export := &c.EXPORT
	err = validation.ValidateStruct(export,
		validation.Field(&export.Channel, validation.Each(validation.In(known...))),
	)
	if err != nil {
		return errors.Wrap(err, "EXPORT")
	}

	if _, err := decimal.NewFromString(c.DELIVERY.DeliveryFee); err != nil {
		return errors.Wrapf(err, "DELIVERY: bad DeliveryFee %q", c.DELIVERY.DeliveryFee)
	}

	if _, err := time.LoadLocation(c.RUN.Timezone); err != nil {
		return errors.Wrapf(err, "RUN: unknown Timezone %q", c.RUN.Timezone)
	}
	return nil
}

// Location returns the store timezone, UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.RUN.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Second * time.Duration(c.WOOCOMMERCE.Timeout)
}
