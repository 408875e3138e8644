// Package cereal implements the best-preworkout-cereal pipeline: download
// the cereal nutrition dataset, normalize its column headers, pick the most
// protein-rich cereal, and report it.
//
// The domain logic is two functions. Preprocess lowercases headers and
// guarantees a "name" identifier column (renaming "brand" when needed).
// HighestProtein picks the row with the most protein, preferring fewer
// calories on a tie and first occurrence after that.
//
// Job wires the steps into a single linear run:
//
//	loader, _ := fetch.New(cfg.Source)
//	job := cereal.NewJob(loader, cereal.NewLogReporter(log))
//	name, err := job.Run(ctx)
package cereal
