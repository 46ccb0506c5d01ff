package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/campusopt/hsaga"
	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/sa"
)

// requestFile is the on-disk JSON shape accepted by `optimize --input`
// (spec.md §6.4). It carries a subset of hsaga.OptimizationRequest and
// replaces the function-valued CostOracle collaborator with a flat per-type
// cost table, since JSON cannot carry a function value. It has no site
// polygon, adjacency table or road network; SA/GA tuning and the deadline
// come from --config and the command-line flags instead.
type requestFile struct {
	Buildings []struct {
		ID     string      `json:"id"`
		Type   domain.Type `json:"type"`
		Area   float64     `json:"area"`
		Floors int         `json:"floors"`
	} `json:"buildings"`
	Bounds struct {
		XMin float64 `json:"xmin"`
		YMin float64 `json:"ymin"`
		XMax float64 `json:"xmax"`
		YMax float64 `json:"ymax"`
	} `json:"bounds"`
	CostPerSqm map[domain.Type]float64 `json:"cost_per_sqm"`
	Objectives []struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	} `json:"objectives"`
	Constraints *struct {
		SetbackDistance  *float64 `json:"setback_distance"`
		CoverageMaxRatio *float64 `json:"coverage_max_ratio"`
		FARMaxRatio      *float64 `json:"far_max_ratio"`
		GreenMinRatio    *float64 `json:"green_min_ratio"`
	} `json:"constraints"`
	Seed int64 `json:"seed"`
}

func loadRequestFile(path string) (*requestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rf requestFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	return &rf, nil
}

func (rf *requestFile) buildings() []domain.Building {
	out := make([]domain.Building, len(rf.Buildings))
	for i, b := range rf.Buildings {
		out[i] = domain.Building{ID: b.ID, Type: b.Type, Area: b.Area, Floors: b.Floors}
	}
	return out
}

func (rf *requestFile) objectives() []hsaga.ObjectiveWeight {
	out := make([]hsaga.ObjectiveWeight, len(rf.Objectives))
	for i, o := range rf.Objectives {
		out[i] = hsaga.ObjectiveWeight{Name: o.Name, Weight: o.Weight}
	}
	return out
}

func (rf *requestFile) constraints() *hsaga.ConstraintSpec {
	if rf.Constraints == nil {
		return nil
	}
	return &hsaga.ConstraintSpec{
		SetbackDistance:  rf.Constraints.SetbackDistance,
		CoverageMaxRatio: rf.Constraints.CoverageMaxRatio,
		FARMaxRatio:      rf.Constraints.FARMaxRatio,
		GreenMinRatio:    rf.Constraints.GreenMinRatio,
	}
}

func (rf *requestFile) bounds() domain.Bounds {
	return domain.Bounds{
		XMin: rf.Bounds.XMin, YMin: rf.Bounds.YMin,
		XMax: rf.Bounds.XMax, YMax: rf.Bounds.YMax,
	}
}

// toRequest assembles an hsaga.OptimizationRequest from the parsed file and
// the SA/GA tuning parameters loaded separately from --config (spec.md §6.4).
func (rf *requestFile) toRequest(saCfg sa.Config, gaCfg ga.Config, seed int64, deadline time.Time) hsaga.OptimizationRequest {
	return hsaga.OptimizationRequest{
		Buildings:   rf.buildings(),
		Bounds:      rf.bounds(),
		CostConfig:  objective.CostConfig{Oracle: rf.costOracle()},
		Objectives:  rf.objectives(),
		Constraints: rf.constraints(),
		SAConfig:    saCfg,
		GAConfig:    gaCfg,
		Seed:        seed,
		Deadline:    deadline,
	}
}

// costOracle builds an objective.CostOracle from the flat per-type table,
// falling back to the campus-wide mean when a type is unlisted.
func (rf *requestFile) costOracle() objective.CostOracle {
	mean := 0.0
	if len(rf.CostPerSqm) > 0 {
		sum := 0.0
		for _, v := range rf.CostPerSqm {
			sum += v
		}
		mean = sum / float64(len(rf.CostPerSqm))
	}
	return func(t domain.Type) float64 {
		if v, ok := rf.CostPerSqm[t]; ok {
			return v
		}
		return mean
	}
}
