package main

import (
	"finsight/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProviderCredentialModel{},
		model.TransactionModel{},
		model.UserProfileModel{},
		model.GoalModel{},
		model.InsightMessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
