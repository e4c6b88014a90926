package main

import (
	"fmt"
	"math/rand"
	"os"

	"frontier-report/internal/figures"
	"frontier-report/internal/frontier"
	"frontier-report/internal/trials"
)

// go run etc/tools/test_figures.go
// Renders all six figures from synthetic trials into etc/charts at 100 dpi.
func main() {
	fmt.Println("Generating test figures...")

	tb := &trials.Table{Trials: trials.Synthesize(rand.New(rand.NewSource(1337)), 500)}

	style := figures.DefaultStyle()
	style.DPI = 100
	r, err := figures.NewRenderer(style, "etc/charts")
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	renders := []func() (string, error){
		func() (string, error) { return r.RenderRegression(tb) },
		func() (string, error) { return r.RenderEfficiencyBoxen(tb) },
		func() (string, error) { return r.RenderExpansionDensity(tb) },
		func() (string, error) { return r.RenderEfficiencyCDF(tb) },
		func() (string, error) { return r.RenderGeospatial(frontier.Simulate(frontier.DefaultParams())) },
		func() (string, error) { return r.RenderTimeComplexity(tb) },
	}
	for _, render := range renders {
		path, err := render()
		if err != nil {
			fmt.Printf("Error generating figure: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Figure generated: %s\n", path)
	}
	fmt.Println("Open the files to see the result!")
}
