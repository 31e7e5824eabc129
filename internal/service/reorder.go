package service

import (
	"context"
	"log"
	"sync"
	"time"

	"agrovet-rest-api/internal/store"
)

// ReorderScannerConfig holds configuration for the reorder scanner.
type ReorderScannerConfig struct {
	// ScanInterval is how often the inventory is scanned.
	ScanInterval time.Duration
}

// DefaultReorderScannerConfig returns default scanner configuration.
func DefaultReorderScannerConfig() ReorderScannerConfig {
	return ReorderScannerConfig{
		ScanInterval: 1 * time.Hour,
	}
}

// ReorderScanner periodically scans inventory for items at or below
// their reorder level and logs reorder warnings so they show up in
// operational logs, not just the dashboard.
type ReorderScanner struct {
	store    *store.Store
	config   ReorderScannerConfig
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReorderScanner creates a reorder scanner.
func NewReorderScanner(st *store.Store, cfg ReorderScannerConfig) *ReorderScanner {
	if cfg.ScanInterval <= 0 {
		cfg = DefaultReorderScannerConfig()
	}
	return &ReorderScanner{
		store:  st,
		config: cfg,
		stop:   make(chan struct{}),
	}
}

// Start launches the background scan loop. One scan runs immediately.
func (r *ReorderScanner) Start() {
	r.wg.Add(1)
	go r.run()
	log.Printf("[ReorderScanner] Started, interval=%v", r.config.ScanInterval)
}

// Stop halts the scan loop and waits for it to finish.
func (r *ReorderScanner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.wg.Wait()
}

func (r *ReorderScanner) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.ScanInterval)
	defer ticker.Stop()

	r.scan()

	for {
		select {
		case <-ticker.C:
			r.scan()
		case <-r.stop:
			return
		}
	}
}

func (r *ReorderScanner) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	low, err := r.store.LowStockItems(ctx)
	if err != nil {
		log.Printf("[ReorderScanner] Scan failed: %v", err)
		return
	}

	for _, item := range low {
		if item.Quantity == 0 {
			log.Printf("[ReorderScanner] OUT OF STOCK: %s (id=%d)", item.Name, item.ID)
			continue
		}
		log.Printf("[ReorderScanner] Low stock: %s (id=%d) quantity=%d reorder_level=%d",
			item.Name, item.ID, item.Quantity, item.ReorderLevel)
	}
}
