package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/infrastructure/filesystem"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SyncStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Issues  int `json:"issues"`
}

// GetRosterWorkers pulls every roster workbook from the bucket and parses
// the rows with the same validation the import endpoint applies. Files the
// site admins left half-finished (underscore prefix) are skipped.
func GetRosterWorkers(ctx context.Context, bucket string) ([]attendance.ParsedWorkerRow, []attendance.RowIssue, error) {
	fmt.Printf("[INFO] Fetching roster files from bucket: %s\n", bucket)

	keys, err := filesystem.ListFiles(ctx, bucket, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list files: %w", err)
	}

	var workers []attendance.ParsedWorkerRow
	var issues []attendance.RowIssue

	for _, key := range keys {
		if !strings.HasSuffix(strings.ToLower(key), ".xlsx") {
			continue
		}
		if strings.HasPrefix(key, "_") || strings.Contains(key, "/_") {
			continue
		}

		fmt.Printf("[INFO] Processing file: %s\n", key)
		var buf bytes.Buffer
		if err := filesystem.ReadFile(ctx, bucket, key, &buf); err != nil {
			fmt.Printf("[ERROR] failed to read file %s: %v\n", key, err)
			continue
		}

		f, err := excelize.OpenReader(&buf)
		if err != nil {
			fmt.Printf("[ERROR] failed to open excel file %s: %v\n", key, err)
			continue
		}

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			f.Close()
			continue
		}
		rows, err := f.GetRows(sheets[0])
		f.Close()
		if err != nil {
			fmt.Printf("[ERROR] failed to get rows from file %s: %v\n", key, err)
			continue
		}

		fileWorkers, fileIssues, err := attendance.ParseWorkerRows(rows)
		if err != nil {
			fmt.Printf("[ERROR] failed to parse file %s: %v\n", key, err)
			continue
		}
		for _, issue := range fileIssues {
			fmt.Printf("[WARN] %s row %d: %s\n", key, issue.Row, issue.Message)
		}

		workers = append(workers, fileWorkers...)
		issues = append(issues, fileIssues...)
	}

	return workers, issues, nil
}

// SyncRoster upserts the parsed roster into one site's registry, keyed by
// ops id. New ids are created; existing ones get name, department and
// status refreshed. National id and phone are left alone since the roster
// sheets rarely carry them.
func SyncRoster(db *gorm.DB, parsed []attendance.ParsedWorkerRow, dryRun bool) (SyncStats, error) {
	var existing []model.Worker
	if err := db.Find(&existing).Error; err != nil {
		return SyncStats{}, fmt.Errorf("failed to fetch workers: %w", err)
	}

	byOpsID := make(map[string]model.Worker, len(existing))
	for _, w := range existing {
		byOpsID[w.OpsID] = w
	}

	var toCreate []model.Worker
	type update struct {
		id      uint
		changes map[string]interface{}
	}
	var toUpdate []update
	skipped := 0

	for _, p := range parsed {
		current, ok := byOpsID[p.Worker.OpsID]
		if !ok {
			toCreate = append(toCreate, p.Worker)
			continue
		}

		changes := map[string]interface{}{}
		if current.FullName != p.Worker.FullName {
			changes["full_name"] = p.Worker.FullName
		}
		if current.Department != p.Worker.Department {
			changes["department"] = p.Worker.Department
		}
		if current.Status != p.Worker.Status {
			changes["status"] = p.Worker.Status
		}

		if len(changes) == 0 {
			skipped++
			continue
		}
		toUpdate = append(toUpdate, update{id: current.ID, changes: changes})
	}

	stats := SyncStats{
		Created: len(toCreate),
		Updated: len(toUpdate),
		Skipped: skipped,
	}

	fmt.Printf("[INFO] Dry run (%v): %d to create, %d to update, %d unchanged\n",
		dryRun, stats.Created, stats.Updated, stats.Skipped)

	if dryRun {
		return stats, nil
	}

	return stats, db.Transaction(func(tx *gorm.DB) error {
		if len(toCreate) > 0 {
			if err := tx.CreateInBatches(toCreate, 100).Error; err != nil {
				return fmt.Errorf("failed batch create: %w", err)
			}
		}
		for _, u := range toUpdate {
			if err := tx.Model(&model.Worker{}).Where("id = ?", u.id).Updates(u.changes).Error; err != nil {
				return fmt.Errorf("failed to update worker %d: %w", u.id, err)
			}
		}
		return nil
	})
}
