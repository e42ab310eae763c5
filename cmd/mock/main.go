package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dsn := "root:development@tcp(localhost:3306)/sunter1?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	startDate := utils.MustParseDate("2025-10-01")
	endDate := utils.MustParseDate("2025-10-15")

	workers := mockWorkers(db, 40)
	mockSessions(db, workers, startDate, endDate)
}

func mockWorkers(db *gorm.DB, count int) []model.Worker {
	var workers []model.Worker
	for i := 0; i < count; i++ {
		suffix := strings.ToUpper(uuid.New().String()[:6])
		workers = append(workers, model.Worker{
			OpsID:        fmt.Sprintf("JKT%s", suffix),
			FullName:     fmt.Sprintf("Mock Worker %d", i+1),
			ContractType: model.ContractTypeMpp,
			Department:   model.Departments[i%len(model.Departments)],
			Status:       model.StatusActive,
		})
	}

	fmt.Printf("Inserting %d mock workers...\n", len(workers))
	if err := db.CreateInBatches(workers, 100).Error; err != nil {
		log.Fatalf("failed to insert mock workers: %v", err)
	}
	return workers
}

func mockSessions(db *gorm.DB, workers []model.Worker, startDate, endDate time.Time) {
	shifts := []struct {
		time string
		code string
		hour int
	}{
		{"07:00 - 16:00", "P", 7},
		{"19:00 - 04:00", "M", 19},
	}

	count := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		for _, shift := range shifts {
			plan := 8 + rand.Intn(5)

			// pick eligible workers for the division
			division := model.Divisions[rand.Intn(len(model.Divisions))]
			var eligible []model.Worker
			for _, w := range workers {
				if attendance.DivisionAllowsDepartment(division, w.Department) {
					eligible = append(eligible, w)
				}
			}
			if len(eligible) == 0 {
				continue
			}

			headcount := plan - 2 + rand.Intn(5)
			if headcount > len(eligible) {
				headcount = len(eligible)
			}

			session := model.AttendanceSession{
				Date:      d,
				Division:  division,
				ShiftTime: shift.time,
				ShiftCode: shift.code,
				PlanMpp:   plan,
			}

			checkinBase := time.Date(d.Year(), d.Month(), d.Day(), shift.hour, 0, 0, 0, utils.JakartaTZ)
			for i := 0; i < headcount; i++ {
				w := eligible[i]
				checkin := checkinBase.Add(time.Duration(rand.Intn(20)) * time.Minute)
				checkout := checkin.Add(attendance.MaxShiftDuration)
				session.Records = append(session.Records, model.AttendanceRecord{
					WorkerID:   w.ID,
					OpsID:      w.OpsID,
					FullName:   w.FullName,
					CheckinAt:  checkin,
					CheckoutAt: &checkout,
				})
			}

			if err := db.Create(&session).Error; err != nil {
				log.Fatalf("failed to insert mock session: %v", err)
			}
			count++
		}
	}

	fmt.Printf("Inserted %d mock sessions.\n", count)
}
