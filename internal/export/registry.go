package export

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

// NewWriters builds the writers named in [EXPORT] Channel, in that order.
// A channel listed twice gets one writer.
func NewWriters(cfg *config.Config, logger *logging.Logger) ([]Writer, error) {
	dir := cfg.STORAGE.DataDir
	seen := make(map[string]bool)

	writers := make([]Writer, 0, len(cfg.EXPORT.Channel))
	for _, name := range cfg.EXPORT.Channel {
		if seen[name] {
			continue
		}
		seen[name] = true

		var w Writer
		switch name {
		case config.ChannelOrdersJSON:
			w = NewSummaryWriter(dir, cfg.EXPORT.Separator, cfg.EXPORT.IncludeContact, logger)
		case config.ChannelRegionalCSV:
			w = NewRegionalWriter(dir, logger)
		case config.ChannelDeliveryACSV:
			w = NewDeliveryWriter(dir, Pickup{
				Name:     cfg.DELIVERY.PickupName,
				Phone:    cfg.DELIVERY.PickupPhone,
				Location: cfg.DELIVERY.PickupLocation,
				ItemSize: cfg.DELIVERY.ItemSize,
			}, logger)
		case config.ChannelDeliveryBCSV:
			w = NewDeliveryOrdersWriter(dir, logger)
		case config.ChannelCustomerContacts:
			w = NewContactsWriter(dir, logger)
		case config.ChannelEmailsCSV:
			w = NewEmailsWriter(dir, logger)
		case config.ChannelPhonesCSV:
			w = NewPhonesWriter(dir, logger)
		case config.ChannelOrdersCSV:
			fee, err := decimal.NewFromString(cfg.DELIVERY.DeliveryFee)
			if err != nil {
				return nil, errors.Wrapf(err, "failed decimal.NewFromString(DeliveryFee=%s)", cfg.DELIVERY.DeliveryFee)
			}
			w = NewOrdersWriter(dir, OrderSheet{
				Separator:   cfg.EXPORT.Separator,
				DeliveryFee: fee,
				Status:      cfg.EXPORT.OrderStatus,
				CreatedBy:   cfg.EXPORT.CreatedBy,
			}, logger)
		case config.ChannelAllOrdersJSON:
			w = NewAllOrdersWriter(dir, logger)
		default:
			return nil, errors.Errorf("unknown export channel %q", name)
		}
		writers = append(writers, w)
	}
	return writers, nil
}
