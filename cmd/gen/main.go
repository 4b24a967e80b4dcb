package main

import (
	"fleetplan/internal/infra/persistence/model"

	"gorm.io/gen"
)

// PlanQuerier declares hand-written queries generated alongside the basic CRUD.
type PlanQuerier interface {
	// SELECT * FROM @@table WHERE state = @state AND created_at < NOW() - (@olderThanSeconds * INTERVAL '1 second') ORDER BY created_at LIMIT @limit
	FindStale(state string, olderThanSeconds int, limit int) ([]*gen.T, error)
}

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.PlanModel{}, model.PlanRouteModel{})
	gen.ApplyInterface(func(PlanQuerier) {}, model.PlanModel{})

	gen.Execute()
}
