package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/core"
	"github.com/snnnxs25024-ux/absensi-backend/infrastructure/communication"
	"github.com/snnnxs25024-ux/absensi-backend/lambdas/common"
	"github.com/snnnxs25024-ux/absensi-backend/lambdas/period-recap/helper"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"gorm.io/gorm"
)

// RecapEvent selects what to recap. Year/Month/Half default to the
// half-month that just closed, which is what the 1st-and-16th schedule
// wants.
type RecapEvent struct {
	Sites  *[]string `json:"sites"`
	Env    string    `json:"env"`
	Year   int       `json:"year"`
	Month  int       `json:"month"`
	Half   int       `json:"half"` // 1 or 2
	DryRun bool      `json:"dryRun"`
}

// closedPeriod resolves the recap window. On the 1st-15th the previous
// month's second half has just closed; from the 16th it is this month's
// first half.
func closedPeriod(event RecapEvent, now time.Time) (attendance.Period, error) {
	if event.Year != 0 || event.Month != 0 || event.Half != 0 {
		if event.Year == 0 || event.Month < 1 || event.Month > 12 || (event.Half != 1 && event.Half != 2) {
			return attendance.Period{}, fmt.Errorf("year, month and half (1 or 2) must be given together")
		}
		if event.Half == 1 {
			return attendance.FirstHalf(event.Year, time.Month(event.Month)), nil
		}
		return attendance.SecondHalf(event.Year, time.Month(event.Month)), nil
	}

	if now.Day() >= 16 {
		return attendance.FirstHalf(now.Year(), now.Month()), nil
	}
	prev := now.AddDate(0, -1, 0)
	return attendance.SecondHalf(prev.Year(), prev.Month()), nil
}

func recipients() []string {
	var out []string
	for _, addr := range strings.Split(os.Getenv("RECAP_RECIPIENTS"), ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func RecapSites(ctx context.Context, dsn string, period attendance.Period, sites *[]string, dryRun bool) (map[string]string, error) {
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

	slack := communication.ConnectSlack()
	from := os.Getenv("RECAP_FROM")
	to := recipients()

	results := make(map[string]string)
	for _, site := range targetSites {
		fmt.Printf("[INFO] Recapping site %s for %s\n", site, period.Label())

		var recap helper.SiteRecap
		err := dm.Exec(ctx, site, func(db *gorm.DB) error {
			sessions, err := attendance.LoadSessionsInPeriod(db, period)
			if err != nil {
				return err
			}
			workers, err := attendance.LoadWorkers(db)
			if err != nil {
				return err
			}
			recap = helper.BuildRecap(site, period, sessions, workers)
			return nil
		})
		if err != nil {
			fmt.Printf("[ERROR] failed to recap site %s: %v\n", site, err)
			slack.Error(fmt.Sprintf("period-recap %s failed: %v", site, err))
			results[site] = "error"
			continue
		}

		if dryRun {
			fmt.Printf("[INFO] Dry run: %s\n", recap.SlackLine())
			results[site] = "dry-run"
			continue
		}

		attachment, err := recap.TallyAttachment()
		if err != nil {
			fmt.Printf("[ERROR] failed to build attachment for %s: %v\n", site, err)
			slack.Error(fmt.Sprintf("period-recap %s failed: %v", site, err))
			results[site] = "error"
			continue
		}

		if len(to) > 0 {
			err = helper.SendEmail(ctx, &helper.EmailInfo{
				From:        from,
				To:          to,
				Subject:     recap.Subject(),
				Text:        recap.Text(),
				HTML:        recap.HTML(),
				Attachments: []helper.Attachment{attachment},
			})
			if err != nil {
				fmt.Printf("[ERROR] failed to email recap for %s: %v\n", site, err)
				slack.Error(fmt.Sprintf("period-recap %s failed: %v", site, err))
				results[site] = "error"
				continue
			}
		}

		if err := slack.Info(recap.SlackLine()); err != nil {
			fmt.Printf("[WARN] failed to post slack summary for %s: %v\n", site, err)
		}
		results[site] = "sent"
	}

	return results, nil
}

func HandleRequest(ctx context.Context, event RecapEvent) (map[string]string, error) {
	eventJson, _ := json.Marshal(event)
	fmt.Printf("[INFO] Event: %s\n", string(eventJson))

	period, err := closedPeriod(event, utils.JakartaNow())
	if err != nil {
		return nil, err
	}

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

	return RecapSites(ctx, entry.GetDSN(""), period, event.Sites, event.DryRun)
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
	} else {
		results, err := HandleRequest(context.Background(), RecapEvent{Env: "dev", DryRun: true})
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		resJson, _ := json.MarshalIndent(results, "", "  ")
		fmt.Printf("[SUCCESS] Results:\n%s\n", string(resJson))
	}
}
