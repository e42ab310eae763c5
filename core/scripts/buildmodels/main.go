package main

import (
	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Dev tool: regenerate query helpers from a migrated site schema.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:      "../../models",
		ModelPkgPath: "models", // avoid helper functions
		Mode:         gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.WithDataTypeMap(map[string]func(gorm.ColumnType) (dataType string){
		"date": func(gorm.ColumnType) string {
			return "time.Time"
		},
	})

	gormdb, _ := gorm.Open(mysql.Open("root:development@tcp(localhost:3306)/sunter1?parseTime=true"))
	g.UseDB(gormdb)

	g.GenerateModel("workers")
	g.GenerateModel("attendance_sessions")
	g.GenerateModel("attendance_records")
	g.ApplyBasic()

	// Generate the code
	g.Execute()
}
