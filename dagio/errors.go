package dagio

import "errors"

// ErrNoDAGFiles is returned by LoadDAGSet when a directory contains no
// recognized DAG files.
var ErrNoDAGFiles = errors.New("dagio: no DAG files found")
