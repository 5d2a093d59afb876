package instrument

import (
	"sync"

	"go.uber.org/zap"

	"github.com/meridianfx/meridian/pkg/identifiers"
)

// Catalog holds the live instrument definitions keyed by id. When an
// exchange republishes updated terms the caller upserts the new
// instance, replacing the stored one.
type Catalog struct {
	mu          sync.RWMutex
	instruments map[identifiers.InstrumentId]Instrument
	logger      *zap.Logger
}

func NewCatalog(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		instruments: make(map[identifiers.InstrumentId]Instrument),
		logger:      logger,
	}
}

// Upsert stores inst, superseding any previous definition with the same id.
func (c *Catalog) Upsert(inst Instrument) {
	id := inst.Id()

	c.mu.Lock()
	_, replaced := c.instruments[id]
	c.instruments[id] = inst
	c.mu.Unlock()

	if replaced {
		c.logger.Info("instrument definition superseded", zap.String("id", id.String()))
	}
}

func (c *Catalog) Get(id identifiers.InstrumentId) (Instrument, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	inst, ok := c.instruments[id]
	return inst, ok
}

func (c *Catalog) List() []Instrument {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Instrument, 0, len(c.instruments))
	for _, inst := range c.instruments {
		out = append(out, inst)
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instruments)
}
