package common

import (
	"context"
	"fmt"

	"github.com/snnnxs25024-ux/absensi-backend/console"
	"github.com/snnnxs25024-ux/absensi-backend/core"
)

// ResolveSites decides which site schemas a job visits. An explicit list
// from the event wins. Otherwise the admin registry's active sites are
// used, listing schemas directly only when no registry is reachable or it
// has no rows yet.
func ResolveSites(ctx context.Context, dm *core.DatabaseManager, sites *[]string) ([]string, error) {
	if sites != nil {
		return *sites, nil
	}

	registry, err := console.Connect(ctx)
	if err != nil {
		fmt.Printf("[WARN] site registry unavailable, listing schemas directly: %v\n", err)
		return dm.GetAllDatabases(ctx)
	}

	active, err := console.GetSites(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to load site registry: %w", err)
	}
	if len(active) == 0 {
		return dm.GetAllDatabases(ctx)
	}

	return console.Schemas(active), nil
}
