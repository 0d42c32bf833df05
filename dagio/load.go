package dagio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rtsched/dagsched/dagmodel"
	"gopkg.in/yaml.v3"
)

// LoadDAG parses a single DAG task-set file at path, validates
// acyclicity, and normalizes it to implicit deadline.
func LoadDAG(path string) (*dagmodel.DAG, []Warning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return parseDAG(raw)
}

func parseDAG(raw []byte) (*dagmodel.DAG, []Warning, error) {
	var file dagFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, err
	}

	d := dagmodel.NewDAG()
	for _, n := range file.Nodes {
		if err := d.AddNode(dagmodel.NewNodeData(n.ID, n.Params)); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range file.Edges {
		if err := d.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, nil, err
		}
	}
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	overridden, err := d.NormalizeImplicitDeadline()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if overridden {
		warnings = append(warnings, Warning{Kind: WarnInconsistentDeadline})
	}
	return d, warnings, nil
}

// LoadDAGSet loads every DAG file in dirPath, sorted by file name for
// deterministic dag_id assignment, and stamps each Warning with the
// slice index it will later be dag_id-stamped with by dagset.Run or
// federated.Analyze.
func LoadDAGSet(dirPath string) ([]*dagmodel.DAG, []Warning, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil, ErrNoDAGFiles
	}
	sort.Strings(names)

	dagSet := make([]*dagmodel.DAG, 0, len(names))
	var warnings []Warning
	for k, name := range names {
		d, ws, err := LoadDAG(filepath.Join(dirPath, name))
		if err != nil {
			return nil, nil, err
		}
		dagSet = append(dagSet, d)
		for _, w := range ws {
			w.DAGID = int32(k)
			warnings = append(warnings, w)
		}
	}
	return dagSet, warnings, nil
}
