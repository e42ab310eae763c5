package common

import (
	"context"
	"strings"

	"github.com/snnnxs25024-ux/absensi-backend/infrastructure/devops"
)

// LoadDatabases indexes the SSM server list by lowercased name, so jobs can
// pick their environment entry (dev, prod) straight from the event.
func LoadDatabases(ctx context.Context) (map[string]devops.DBEntry, error) {
	entries, err := devops.LoadDBConfig(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]devops.DBEntry, len(entries))
	for _, entry := range entries {
		result[strings.ToLower(entry.Name)] = entry
	}

	return result, nil
}
