package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	"github.com/snnnxs25024-ux/absensi-backend/lambdas/common"
	"gorm.io/gorm"
)

const defaultBucket = "absensi-roster"

type SyncEvent struct {
	Sites  *[]string `json:"sites"`
	DryRun bool      `json:"dryRun"`
	Env    string    `json:"env"`
	Bucket string    `json:"bucket"`
}

func SyncSites(ctx context.Context, dsn string, bucket string, sites *[]string, dryRun bool) (map[string]SyncStats, error) {
	parsed, issues, err := GetRosterWorkers(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster workers: %w", err)
	}
	fmt.Printf("[INFO] Parsed %d roster rows (%d issues)\n", len(parsed), len(issues))

	dm, err := core.New(dsn, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	dm.LogLevel = core.LogLevelError
	defer dm.Close()

	targetSites, err := common.ResolveSites(ctx, dm, sites)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target sites: %w", err)
	}

	results := make(map[string]SyncStats)
	for _, site := range targetSites {
		fmt.Printf("[INFO] Syncing roster for site: %s\n", site)
		err := dm.Exec(ctx, site, func(db *gorm.DB) error {
			stats, err := SyncRoster(db, parsed, dryRun)
			if err != nil {
				return err
			}
			stats.Issues = len(issues)
			results[site] = stats
			return nil
		})
		if err != nil {
			fmt.Printf("[ERROR] failed to sync site %s: %v\n", site, err)
			continue
		}
	}

	fmt.Printf("[INFO] Finished syncing roster to %d site(s)\n", len(results))
	return results, nil
}

func HandleRequest(ctx context.Context, event SyncEvent) (map[string]SyncStats, error) {
	eventJson, _ := json.Marshal(event)
	fmt.Printf("[INFO] Event: %s\n", string(eventJson))

	dbs, err := common.LoadDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load databases from SSM: %w", err)
	}

	env := strings.ToLower(event.Env)
	if env == "" {
		return nil, fmt.Errorf("environment (env) is required")
	}
	entry, ok := dbs[env]
	if !ok {
		return nil, fmt.Errorf("environment '%s' not found in parameter store", env)
	}

	bucket := event.Bucket
	if bucket == "" {
		bucket = defaultBucket
	}

	return SyncSites(ctx, entry.GetDSN(""), bucket, event.Sites, event.DryRun)
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
	} else {
		dbs, err := common.LoadDatabases(context.Background())
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		dsn := dbs["dev"].GetDSN("")

		results, err := SyncSites(context.Background(), dsn, defaultBucket, nil, true)
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		resJson, _ := json.MarshalIndent(results, "", "  ")
		fmt.Printf("[SUCCESS] Results:\n%s\n", string(resJson))
	}
}
