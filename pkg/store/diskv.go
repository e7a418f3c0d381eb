// Package store persists activity state as human-inspectable JSON records
// in a diskv-backed directory tree.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/DevinLeamy/Daila/pkg/activity"
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Persistence is the storage contract for the full application snapshot.
type Persistence interface {
	Load(ctx context.Context) (*activity.Snapshot, error)
	Save(ctx context.Context, snap *activity.Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config.
// Passing nil resolves the config from disk and environment.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Key buckets. Keys look like activity-3, day-2024-01-02, meta-state; the
// transforms below turn the dash-separated segments into directories.
const (
	bucketActivity = "activity"
	bucketDay      = "day"
	bucketMeta     = "meta"

	metaKey = "meta-state"
)

// meta holds snapshot fields that are not records of their own.
type meta struct {
	NextID activity.ID `json:"next_id"`
}

func (p *persistence) Load(ctx context.Context) (*activity.Snapshot, error) {
	snap := activity.NewSnapshot()
	for key := range p.d.Keys(ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		pk := keyToPathTransform(key)
		if len(pk.Path) == 0 {
			fmt.Fprintf(os.Stderr, "store: skipping unknown key %s\n", key)
			continue
		}
		switch pk.Path[0] {
		case bucketActivity:
			var a activity.Activity
			if err := json.Unmarshal(val, &a); err != nil {
				return nil, fmt.Errorf("store: decode activity %s: %w", key, err)
			}
			snap.Activities = append(snap.Activities, a)
		case bucketDay:
			var day activity.Day
			if err := json.Unmarshal(val, &day); err != nil {
				return nil, fmt.Errorf("store: decode day %s: %w", key, err)
			}
			if day.Date.IsZero() {
				return nil, fmt.Errorf("store: day record %s has no date", key)
			}
			snap.Days[day.Date] = &day
		case bucketMeta:
			var m meta
			if err := json.Unmarshal(val, &m); err != nil {
				return nil, fmt.Errorf("store: decode meta %s: %w", key, err)
			}
			snap.NextID = m.NextID
		default:
			fmt.Fprintf(os.Stderr, "store: skipping unknown key %s\n", key)
		}
	}
	snap.Normalize()
	return snap, nil
}

func (p *persistence) Save(ctx context.Context, snap *activity.Snapshot) error {
	keep := make(map[string][]byte, len(snap.Activities)+len(snap.Days)+1)

	for _, a := range snap.Activities {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("store: encode activity %s: %w", a.ID, err)
		}
		keep[activityKey(a.ID)] = data
	}
	for date, day := range snap.Days {
		if day == nil || day.Empty() {
			continue
		}
		data, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("store: encode day %s: %w", date, err)
		}
		keep[dayKey(date)] = data
	}
	data, err := json.Marshal(meta{NextID: snap.NextID})
	if err != nil {
		return fmt.Errorf("store: encode meta: %w", err)
	}
	keep[metaKey] = data

	// Write the new state before erasing anything so a failure mid-save
	// never removes records from the previous save.
	for key, data := range keep {
		if err := p.d.Write(key, data); err != nil {
			return fmt.Errorf("store: write %s: %w", key, err)
		}
	}
	for key := range p.d.Keys(ctx.Done()) {
		if _, ok := keep[key]; ok {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			fmt.Fprintf(os.Stderr, "store: erase stale key %s: %v\n", key, err)
		}
	}
	return nil
}

func activityKey(id activity.ID) string {
	return fmt.Sprintf("%s-%s", bucketActivity, id)
}

func dayKey(date timeutil.Date) string {
	return fmt.Sprintf("%s-%s", bucketDay, date)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
