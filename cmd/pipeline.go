package cmd

import (
	"go.uber.org/zap"

	"github.com/rhicksrad/India/internal/aggregate"
	"github.com/rhicksrad/India/internal/ingest"
	"github.com/rhicksrad/India/internal/logging"
	"github.com/rhicksrad/India/internal/region"
	"github.com/rhicksrad/India/internal/report"
)

// pipelineResult carries what one full ingest, aggregate and join pass
// produced: the output collections plus per-source row accounting.
type pipelineResult struct {
	outputs *report.Outputs
	sources []report.SourceCount
}

// runPipeline executes the batch pipeline core. Each source is consumed
// fully before the next is read: incidence, then the dish table, then the
// recipe table.
func runPipeline(tbl *region.Table, incidencePath, dishesPath, recipesPath string) (*pipelineResult, error) {
	incTable, err := ingest.ReadIncidence(incidencePath)
	if err != nil {
		return nil, err
	}
	incAgg := aggregate.NewIncidenceAggregator(tbl)
	ingest.FoldIncidence(incAgg, incTable)
	logging.Info("incidence folded",
		zap.Int("cells", incAgg.Added()),
		zap.Int("dropped", incAgg.Dropped()),
		zap.Ints("years", incAgg.Years()))

	cuiAgg := aggregate.NewCuisineAggregator(tbl)

	dishRows, err := ingest.ReadDishes(dishesPath)
	if err != nil {
		return nil, err
	}
	ingest.FoldDishes(cuiAgg, dishRows)
	dishesAdded, dishesDropped := cuiAgg.Added(), cuiAgg.Dropped()
	logging.Info("dishes folded", zap.Int("kept", dishesAdded), zap.Int("dropped", dishesDropped))

	recipeRows, err := ingest.ReadRecipes(recipesPath)
	if err != nil {
		return nil, err
	}
	unresolved := ingest.FoldRecipes(cuiAgg, recipeRows)
	recipesAdded := cuiAgg.Added() - dishesAdded
	recipesDropped := cuiAgg.Dropped() - dishesDropped + unresolved
	logging.Info("recipes folded",
		zap.Int("kept", recipesAdded),
		zap.Int("dropped", recipesDropped),
		zap.Int("unresolved_cuisines", unresolved))

	outputs, err := report.Build(incAgg.Finalize(), cuiAgg.Finalize(), incAgg.Years(), tbl)
	if err != nil {
		return nil, err
	}
	return &pipelineResult{
		outputs: outputs,
		sources: []report.SourceCount{
			{Name: "incidence", Kept: incAgg.Added(), Dropped: incAgg.Dropped()},
			{Name: "dishes", Kept: dishesAdded, Dropped: dishesDropped},
			{Name: "recipes", Kept: recipesAdded, Dropped: recipesDropped},
		},
	}, nil
}
