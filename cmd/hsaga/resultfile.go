package main

import (
	"encoding/json"
	"os"

	"github.com/campusopt/hsaga"
)

// resultFile is the on-disk JSON shape written by `optimize --output`
// (spec.md §6.4), plus a run identifier so a batch of result files can be
// correlated back to the CLI invocation that produced them.
type resultFile struct {
	RunID  string                  `json:"run_id"`
	Result *hsaga.OptimizationResult `json:"result"`
}

func writeResultFile(path string, runID string, result *hsaga.OptimizationResult) error {
	rf := resultFile{RunID: runID, Result: result}
	data, err := json.MarshalIndent(rf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
