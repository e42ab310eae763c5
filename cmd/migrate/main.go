package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	site := flag.String("site", "", "site schema to migrate (appended to DSN)")
	flag.Parse()

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/?parseTime=true"
	}
	if *site == "" {
		log.Fatal("-site is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.Exec("CREATE DATABASE IF NOT EXISTS `" + *site + "`").Error; err != nil {
		log.Fatalf("failed to create schema %s: %v", *site, err)
	}
	if err := db.Exec("USE `" + *site + "`").Error; err != nil {
		log.Fatalf("failed to select schema %s: %v", *site, err)
	}

	err = db.AutoMigrate(
		&model.Worker{},
		&model.AttendanceSession{},
		&model.AttendanceRecord{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	fmt.Printf("[INFO] migrated schema %s\n", *site)
}
