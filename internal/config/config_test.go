package config

import "testing"

func TestValidateRejectsNegativeThreads(t *testing.T) {
	c := &SolverConfig{Threads: -1}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative threads")
	}
}

func TestValidateRejectsOutOfRangeCPU(t *testing.T) {
	c := &SolverConfig{CPU: 1.5}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for cpu > 1")
	}
}

func TestValidateRejectsVerboseAndQuiet(t *testing.T) {
	c := &SolverConfig{Verbose: true, Quiet: true}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for verbose+quiet")
	}
}

func TestValidateNormalizesMaxSolutionsOne(t *testing.T) {
	c := &SolverConfig{All: true, MaxSolutions: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.All {
		t.Error("MaxSolutions=1 should clear All, matching stopAfterFirst semantics")
	}
}

func TestValidateNoParallelForcesSingleThread(t *testing.T) {
	c := &SolverConfig{NoParallel: true, Threads: 8, CPU: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Threads != 1 {
		t.Errorf("Threads = %d, want 1", c.Threads)
	}
}

func TestSearchOptionsProjection(t *testing.T) {
	c := SolverConfig{All: true, MaxSolutions: 5, Threads: 4, CPU: 0.5}
	opts := c.SearchOptions()
	if !opts.FindAll || opts.MaxSolutions != 5 || opts.Threads != 4 || opts.CPU != 0.5 {
		t.Errorf("unexpected projection: %+v", opts)
	}
}
