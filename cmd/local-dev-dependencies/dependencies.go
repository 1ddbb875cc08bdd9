package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type starter func(ctx context.Context) (error, string, func())

// dependencies keeps the containers running until shutdown.
type dependencies struct {
	startTimeout time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	running  sync.WaitGroup
	errs     chan error
}

func newDependencies(startTimeout time.Duration, count int) *dependencies {
	return &dependencies{
		startTimeout: startTimeout,
		stop:         make(chan struct{}),
		// every dependency can fail without waiting on anyone to read it
		errs: make(chan error, count),
	}
}

// start runs a container until shutdown and writes the connection string for it to confFile.
// up is set once the container is usable.
func (d *dependencies) start(name string, confFile string, start starter, up *atomic.Bool) {
	d.running.Add(1)
	go func() {
		defer d.running.Done()

		// If 2min is not long enough for initial starts then change it, for now I'll guess it's good enough,
		// but that's from sitting with a stable (and fast) internet connection… If needed I'll make it configurable later.
		ctx, cancel := context.WithTimeout(context.Background(), d.startTimeout)
		err, conn, done := start(ctx)
		cancel()
		if err != nil {
			d.errs <- fmt.Errorf("failed to start %s: %w", name, err)
			return
		}

		if err := os.WriteFile(confFile, []byte(conn), 0644); err != nil {
			d.errs <- fmt.Errorf("failed to write connection string to %s: %w", confFile, err)
			done()
			return
		}

		up.Store(true)
		<-d.stop
		log.Printf("received stop signal for %s", name)
		done()
		up.Store(false)
		log.Printf("stopped %s, time to report back", name)
	}()
}

// shutdown tells every dependency to stop, and with wait set returns once they have.
// Dependencies that failed to start are already done.
func (d *dependencies) shutdown(wait bool) {
	d.stopOnce.Do(func() { close(d.stop) })
	if wait {
		d.running.Wait()
	}
}
