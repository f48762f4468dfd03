package mediasync

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/econectar/econectar-web/internal/media"
	"github.com/go-co-op/gocron/v2"
)

// Scheduler keeps the gallery registry in step with the media bucket:
// an initial scan at construction, then a cron-driven rescan. The
// registry is replaced wholesale per scan, and newly appearing gallery
// names are reported through the callback.
type Scheduler struct {
	s         gocron.Scheduler
	library   *media.Library
	registry  *gallery.Registry
	mu        sync.Mutex
	known     map[string]struct{}
	onNewName func(names []string)
}

func NewScheduler(library *media.Library, registry *gallery.Registry, cron string, onNewName func(names []string)) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create new scheduler: %w", err)
	}

	ms := &Scheduler{
		s:         s,
		library:   library,
		registry:  registry,
		known:     make(map[string]struct{}),
		onNewName: onNewName,
	}

	if _, err = ms.s.NewJob(gocron.CronJob(cron, false), gocron.NewTask(func() {
		if err := ms.Rescan(); err != nil {
			slog.Error("failed to execute media rescan cron job", slog.String("error", err.Error()))
		}
	})); err != nil {
		return nil, fmt.Errorf("failed to schedule media rescan job: %w", err)
	}

	if err = ms.Rescan(); err != nil {
		return nil, fmt.Errorf("failed to scan existing galleries: %w", err)
	}

	ms.s.Start()
	return ms, nil
}

// Rescan reloads every gallery manifest and swaps the registry.
func (ms *Scheduler) Rescan() error {
	galleries, err := ms.library.Galleries()
	if err != nil {
		return fmt.Errorf("failed to load galleries from media storage: %w", err)
	}

	ms.registry.Replace(galleries)

	ms.mu.Lock()
	defer ms.mu.Unlock()
	newNames := []string{}
	for _, g := range galleries {
		if _, ok := ms.known[g.Name]; !ok {
			ms.known[g.Name] = struct{}{}
			newNames = append(newNames, g.Name)
		}
	}

	if len(newNames) > 0 {
		slog.Info("registered galleries from media storage", slog.Any("names", newNames))
		if ms.onNewName != nil {
			ms.onNewName(newNames)
		}
	}

	return nil
}

func (ms *Scheduler) Close() error {
	if err := ms.s.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down media rescan scheduler: %w", err)
	}
	return nil
}
