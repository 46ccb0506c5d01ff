// Campus lays out a small synthetic campus on a 300x300m site using the
// hybrid SA/GA optimizer, then prints the best layout found.
package main

import (
	"context"
	"fmt"

	"github.com/campusopt/hsaga"
	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/sa"
)

func main() {
	buildings := []domain.Building{
		{ID: "dorm-a", Type: domain.Residential, Area: 4000, Floors: 4},
		{ID: "dorm-b", Type: domain.Residential, Area: 3500, Floors: 4},
		{ID: "lecture-hall", Type: domain.Educational, Area: 5000, Floors: 2},
		{ID: "library", Type: domain.Library, Area: 3000, Floors: 3},
		{ID: "dining", Type: domain.Dining, Area: 1800, Floors: 1},
		{ID: "gym", Type: domain.Sports, Area: 2500, Floors: 1},
		{ID: "clinic", Type: domain.Health, Area: 900, Floors: 1},
		{ID: "admin", Type: domain.Administrative, Area: 1200, Floors: 2},
	}

	costPerSqm := map[domain.Type]float64{
		domain.Residential:    1400,
		domain.Educational:    1800,
		domain.Library:        1700,
		domain.Dining:         1500,
		domain.Sports:         1600,
		domain.Health:         2000,
		domain.Administrative: 1300,
	}

	req := hsaga.OptimizationRequest{
		Buildings: buildings,
		Bounds:    domain.Bounds{XMin: 0, YMin: 0, XMax: 300, YMax: 300},
		CostConfig: objective.CostConfig{
			Oracle: func(t domain.Type) float64 { return costPerSqm[t] },
		},
		Objectives: []hsaga.ObjectiveWeight{
			{Name: objective.NameCost, Weight: 0.2},
			{Name: objective.NameAdjacency, Weight: 0.3},
			{Name: objective.NameAccessibility, Weight: 0.2},
			{Name: objective.NameWalking, Weight: 0.3},
		},
		Constraints: &hsaga.ConstraintSpec{
			SetbackDistance:  floatPtr(5),
			CoverageMaxRatio: floatPtr(0.4),
		},
		SAConfig: sa.Config{NumChains: 8, IterationsPerChain: 500},
		GAConfig: ga.Config{PopulationSize: 60, Generations: 80},
		Seed:     7,
	}

	result, err := hsaga.Run(context.Background(), req)
	if err != nil {
		fmt.Println("optimization failed:", err)
		return
	}

	fmt.Printf("stop reason: %s\n", result.StopReason)
	fmt.Printf("best fitness: %.4f\n", result.Best.FitnessValue())
	fmt.Printf("evaluations: %d, SA iterations: %d, GA generations: %d\n",
		result.Stats.Evaluations, result.Stats.SAIterations, result.Stats.GAGenerations)

	fmt.Println("placements:")
	for _, b := range buildings {
		p := result.Best.Positions[b.ID]
		fmt.Printf("  %-14s (%-14s) -> (%6.1f, %6.1f)\n", b.ID, b.Type, p.X, p.Y)
	}

	if result.ConstraintReport != nil {
		fmt.Printf("constraints satisfied: %v (penalty %.4f)\n",
			result.ConstraintReport.Satisfied, result.ConstraintReport.Penalty)
	}
}

func floatPtr(f float64) *float64 { return &f }
