// Package orphans finds profiles left behind by account deletions whose
// profile delete failed, and files a report about them. It never deletes.
package orphans

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// Lister returns profiles that have no matching identity.
type Lister interface {
	ListOrphans(ctx context.Context) ([]models.Profile, error)
}

// Uploader stores a finished report under key.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

// Observer receives the outcome of each scan.
type Observer interface {
	ObserveOrphanScan(found int, err error)
}

// Report is the uploaded document.
type Report struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Count       int              `json:"count"`
	Profiles    []models.Profile `json:"profiles"`
}

type Janitor struct {
	lister   Lister
	uploader Uploader
	observer Observer
	interval time.Duration
	logger   logging.Logger
	now      func() time.Time
}

func NewJanitor(l Lister, u Uploader, o Observer, interval time.Duration, logger logging.Logger) *Janitor {
	return &Janitor{
		lister:   l,
		uploader: u,
		observer: o,
		interval: interval,
		logger:   logger.With("module", "orphans"),
		now:      time.Now,
	}
}

// ReportKey builds the object key for a report generated at t.
func ReportKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("orphans/%04d/%02d/%02d/%s.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

// Scan runs one pass and returns the key of the uploaded report, or ""
// when there was nothing to report.
func (j *Janitor) Scan(ctx context.Context) (key string, err error) {
	found := 0
	defer func() {
		if j.observer != nil {
			j.observer.ObserveOrphanScan(found, err)
		}
	}()

	ps, err := j.lister.ListOrphans(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing orphans: %w", err)
	}
	found = len(ps)
	if found == 0 {
		return "", nil
	}

	now := j.now()
	body, err := json.Marshal(Report{GeneratedAt: now.UTC(), Count: found, Profiles: ps})
	if err != nil {
		return "", err
	}

	key = ReportKey(now)
	if err := j.uploader.Upload(ctx, key, body); err != nil {
		return "", fmt.Errorf("error uploading report: %w", err)
	}
	return key, nil
}

// Run scans once immediately and then every interval until ctx is done.
// A non-positive interval disables the janitor.
func (j *Janitor) Run(ctx context.Context) error {
	if j.interval <= 0 {
		j.logger.Info(ctx, "orphan janitor disabled")
		return nil
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		key, err := j.Scan(ctx)
		switch {
		case err != nil:
			j.logger.Error(ctx, "orphan scan failed", "error", err)
		case key != "":
			j.logger.Warn(ctx, "orphan profiles reported", "key", key)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
