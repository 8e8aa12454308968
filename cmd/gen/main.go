package main

import (
	"clinic/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DoctorModel{},
		model.PatientModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
