package store

import (
	"sort"

	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

// ProcessedOrders is the set of order ids already exported by earlier runs.
// It only grows.
type ProcessedOrders struct {
	path   string
	ids    map[int64]struct{}
	logger *logging.Logger
}

func NewProcessedOrders(path string, logger *logging.Logger) *ProcessedOrders {
	return &ProcessedOrders{
		path:   path,
		ids:    make(map[int64]struct{}),
		logger: logger,
	}
}

// Load reads the persisted set. A missing file is an empty set; an unreadable
// or corrupt file is also an empty set, with the error returned for the caller
// to record.
func (p *ProcessedOrders) Load() error {
	p.logger.Info("ProcessedOrders.Load:>Start")
	defer p.logger.Info("ProcessedOrders.Load:>End")

	p.ids = make(map[int64]struct{})

	var ids []int64
	found, err := readJSON(p.path, &ids)
	if err != nil {
		p.logger.Errorf("processed orders %s unreadable, starting empty: %v", p.path, err)
		return err
	}
	if !found {
		p.logger.Infof("processed orders %s not found, starting empty", p.path)
		return nil
	}

	for _, id := range ids {
		p.ids[id] = struct{}{}
	}
	p.logger.Infof("loaded %d processed orders from %s", len(p.ids), p.path)
	return nil
}

func (p *ProcessedOrders) Contains(id int64) bool {
	_, ok := p.ids[id]
	return ok
}

func (p *ProcessedOrders) Mark(ids ...int64) {
	for _, id := range ids {
		p.ids[id] = struct{}{}
	}
}

func (p *ProcessedOrders) Len() int {
	return len(p.ids)
}

// IDs returns the set in ascending order.
func (p *ProcessedOrders) IDs() []int64 {
	ids := make([]int64, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Persist rewrites the whole file.
func (p *ProcessedOrders) Persist() error {
	p.logger.Info("ProcessedOrders.Persist:>Start")
	defer p.logger.Info("ProcessedOrders.Persist:>End")

	err := writeJSONAtomic(p.path, p.IDs())
	if err != nil {
		return err
	}
	p.logger.Infof("saved %d processed orders to %s", len(p.ids), p.path)
	return nil
}
