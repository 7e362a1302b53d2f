package main

import (
	"gravity/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.IntegrationModel{},
		model.DailyLogModel{},
		model.ChallengeModel{},
		model.CommentModel{},
		model.ReportModel{},
		model.PushDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
