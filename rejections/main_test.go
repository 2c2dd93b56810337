package rejections_test

import (
	"flag"
	"fmt"
	"os"
	"testing"
)

//revive:disable:import-shadowing

// Runs the suite and enforces the coverage floor expected by the build
// pipeline.
func TestMain(m *testing.M) {
	minCoverageFlag := flag.Float64(
		"minimum-coverage",
		0.85,
		"minimum coverage for passing tests from 0.0 (none) - 1.0 (all lines.)",
	)

	flag.Parse()

	testResults := m.Run()

	// The floor is only checked when the run itself passed and was started
	// with -cover, so plain `go test` invocations are unaffected.
	if testResults == 0 && testing.CoverMode() != "" {
		coverage := testing.Coverage()
		if coverage < *minCoverageFlag {
			fmt.Printf(
				"tests passed but coverage %v does not meet the minimum"+
					" requirement of %v\n",
				coverage,
				*minCoverageFlag,
			)
			testResults = -1
		}
	}

	os.Exit(testResults)
}
