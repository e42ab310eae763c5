package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	v1 "github.com/snnnxs25024-ux/absensi-backend/client/v1"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
)

// simulate replays a CSV of scans against a running server, the way a scan
// console would: scan by scan, carrying the buffer, then an optional save.
// CSV columns: opsId, offsetMinutes (informational, kept in the output).
func main() {
	baseURL := flag.String("url", "http://localhost:8090", "server base URL")
	csvPath := flag.String("csv", "scans.csv", "scan CSV file")
	division := flag.String("division", "TP SUNTER 1", "session division")
	shiftTime := flag.String("shift-time", "07:00 - 16:00", "shift window label")
	shiftCode := flag.String("shift-code", "P", "shift code")
	planMpp := flag.Int("plan", 10, "planned headcount")
	finalize := flag.Bool("finalize", false, "save the session after the replay")
	flag.Parse()

	token := os.Getenv("ABSENSI_TOKEN")
	if token == "" {
		log.Fatal("ABSENSI_TOKEN is not set")
	}

	scans, err := readScans(*csvPath)
	if err != nil {
		log.Fatalf("failed to read scans: %v", err)
	}
	fmt.Printf("Replaying %d scans against %s\n", len(scans), *baseURL)

	client := v1.NewAbsensiClient(*baseURL, token)

	session := v1.SessionDescriptorDTO{
		Date:      utils.JakartaNow().Format("2006-01-02"),
		Division:  *division,
		ShiftTime: *shiftTime,
		ShiftCode: *shiftCode,
		PlanMpp:   *planMpp,
	}

	var buffer []v1.BufferedRecordDTO
	admitted, rejected := 0, 0

	for _, scan := range scans {
		outcome, err := client.Sessions.Scan(session, buffer, scan.opsID)
		if err != nil {
			log.Fatalf("scan %s failed: %v", scan.opsID, err)
		}

		if outcome.Admitted {
			admitted++
			// newest first, matching the console display
			buffer = append([]v1.BufferedRecordDTO{*outcome.Entry}, buffer...)
			fmt.Printf("  +%3dm %-12s admitted\n", scan.offsetMinutes, scan.opsID)
		} else {
			rejected++
			fmt.Printf("  +%3dm %-12s rejected: %s (%s)\n", scan.offsetMinutes, scan.opsID, outcome.Reject.Reason, outcome.Reject.Message)
		}
	}

	fmt.Printf("Done: %d admitted, %d rejected\n", admitted, rejected)

	if *finalize {
		result, err := client.Sessions.Save(session, buffer)
		if err != nil {
			log.Fatalf("failed to save session: %v", err)
		}
		if result.Saved {
			fmt.Printf("Saved session %d with %d records\n", result.ID, len(buffer))
		} else {
			fmt.Println("Nothing to save (empty buffer)")
		}
	}
}

type scanRow struct {
	opsID         string
	offsetMinutes int
}

func readScans(path string) ([]scanRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		return nil, err
	}

	var scans []scanRow
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 1 || row[0] == "" {
			continue
		}

		offset := 0
		if len(row) > 1 && row[1] != "" {
			offset, err = strconv.Atoi(row[1])
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid offset: %w", i+1, err)
			}
		}

		scans = append(scans, scanRow{opsID: row[0], offsetMinutes: offset})
	}

	return scans, nil
}
