// Package config loads the optimizer's SA/GA tuning parameters from YAML,
// for the CLI entry point (spec.md §6.4). The library entry point itself
// never touches the filesystem; config is purely a cmd/hsaga concern.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/sa"
)

// File is the on-disk shape of a tuning-parameters file. SA()/GA() copy the
// fields as they are; the sa and ga packages replace zero-valued fields with
// their defaults when they consume the Config, except the GA crossover_rate
// and mutation_rate, where zero is kept and disables that operator.
type File struct {
	SAParams struct {
		NumChains               int     `yaml:"num_chains"`
		IterationsPerChain      int     `yaml:"iterations_per_chain"`
		InitialTemp             float64 `yaml:"initial_temp"`
		FinalTemp               float64 `yaml:"final_temp"`
		CoolingRate             float64 `yaml:"cooling_rate"`
		SigmaTemperatureDivisor float64 `yaml:"sigma_temperature_divisor"`
	} `yaml:"sa"`
	GAParams struct {
		PopulationSize  int     `yaml:"population_size"`
		Generations     int     `yaml:"generations"`
		CrossoverRate   float64 `yaml:"crossover_rate"`
		SwapProbability float64 `yaml:"swap_probability"`
		MutationRate    float64 `yaml:"mutation_rate"`
		GaussianShare   float64 `yaml:"gaussian_share"`
		SwapShare       float64 `yaml:"swap_share"`
		ResetShare      float64 `yaml:"reset_share"`
		GaussianSigma   float64 `yaml:"gaussian_sigma"`
		TournamentSize  int     `yaml:"tournament_size"`
		EliteSize       int     `yaml:"elite_size"`
	} `yaml:"ga"`
	Seed     *int64   `yaml:"seed"`
	Deadline *float64 `yaml:"deadline_seconds"`
}

// Load reads and parses a tuning-parameters YAML file. A missing file is
// not an error: Load returns the zero File, which SA()/GA() turn into
// package defaults.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// SA converts the file's SA section into an sa.Config, defaulting any
// zero-valued field via sa.Config.withDefaults at consumption time.
func (f *File) SA() sa.Config {
	return sa.Config{
		NumChains:               f.SAParams.NumChains,
		IterationsPerChain:      f.SAParams.IterationsPerChain,
		InitialTemp:             f.SAParams.InitialTemp,
		FinalTemp:               f.SAParams.FinalTemp,
		CoolingRate:             f.SAParams.CoolingRate,
		SigmaTemperatureDivisor: f.SAParams.SigmaTemperatureDivisor,
	}
}

// GA converts the file's GA section into a ga.Config.
func (f *File) GA() ga.Config {
	return ga.Config{
		PopulationSize:  f.GAParams.PopulationSize,
		Generations:     f.GAParams.Generations,
		CrossoverRate:   f.GAParams.CrossoverRate,
		SwapProbability: f.GAParams.SwapProbability,
		MutationRate:    f.GAParams.MutationRate,
		GaussianShare:   f.GAParams.GaussianShare,
		SwapShare:       f.GAParams.SwapShare,
		ResetShare:      f.GAParams.ResetShare,
		GaussianSigma:   f.GAParams.GaussianSigma,
		TournamentSize:  f.GAParams.TournamentSize,
		EliteSize:       f.GAParams.EliteSize,
	}
}
