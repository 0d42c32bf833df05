// Package dagio ingests DAG task-set files from disk into dagmodel.DAG
// values and writes a completed run's schedlog.Document back out. It is
// deliberately external to the scheduling core: ingestion performs
// implicit-deadline normalization and cycle validation, and reports
// non-fatal conditions as Warning values rather than logging directly;
// cmd/dagsched is the one place that has a zap.SugaredLogger to surface
// them on.
package dagio
