package dagio

// Warning kinds emitted during ingestion.
const (
	WarnInconsistentDeadline = "InconsistentDeadline"
)

// Warning is a non-fatal condition raised while loading dagID. Callers
// decide how to surface it; cmd/dagsched logs it via zap.
type Warning struct {
	Kind  string
	DAGID int32
}

// nodeFile is one entry of a DAG file's "nodes" list.
type nodeFile struct {
	ID     int32            `yaml:"id"`
	Params map[string]int32 `yaml:"params"`
}

// edgeFile is one entry of a DAG file's "edges" list. Weight is parsed
// but never interpreted arithmetically.
type edgeFile struct {
	From   int32 `yaml:"from"`
	To     int32 `yaml:"to"`
	Weight int32 `yaml:"weight"`
}

// dagFile is the on-disk shape of a single DAG task-set file.
type dagFile struct {
	Nodes []nodeFile `yaml:"nodes"`
	Edges []edgeFile `yaml:"edges"`
}
