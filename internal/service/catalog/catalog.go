package catalog

import "time"

// Entry describes one forecasting model: its declared accuracy and the time it was
// last trained. Entries are static; no real model backs them.
type Entry struct {
	Accuracy    float64   `json:"accuracy"`
	LastTrained time.Time `json:"last_trained"`
}

// Catalog is the process-wide set of supported forecasting models. It is built once
// at startup and never mutated, so it is safe for concurrent reads without locking.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// New returns the fixed model catalog.
func New() *Catalog {
	lastTrained := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	names := []string{"LSTM", "CNN_LSTM", "ARIMA", "SARIMA", "ARCH_GARCH"}
	entries := map[string]Entry{
		"LSTM":       {Accuracy: 0.85, LastTrained: lastTrained},
		"CNN_LSTM":   {Accuracy: 0.82, LastTrained: lastTrained},
		"ARIMA":      {Accuracy: 0.78, LastTrained: lastTrained},
		"SARIMA":     {Accuracy: 0.80, LastTrained: lastTrained},
		"ARCH_GARCH": {Accuracy: 0.75, LastTrained: lastTrained},
	}
	return &Catalog{entries: entries, names: names}
}

// Lookup returns the entry for a model name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// List returns a copy of all entries keyed by model name.
func (c *Catalog) List() map[string]Entry {
	out := make(map[string]Entry, len(c.entries))
	for name, e := range c.entries {
		out[name] = e
	}
	return out
}

// Names returns the model names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
