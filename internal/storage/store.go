package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"

	"github.com/san-kum/sortvis/internal/algorithms"
	"github.com/san-kum/sortvis/internal/steps"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

var ErrCorruptRun = errors.New("storage: corrupt run")

var stepsHeader = []string{"step", "kind", "description", "values", "states", "comparing", "swapping", "move"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Input     []int              `json:"input"`
	Target    int                `json:"target"`
	Steps     int                `json:"steps"`
	Final     []int              `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a recorded run as metadata.json plus steps.csv under a fresh
// run directory and returns the run id.
func (s *Store) Save(algorithm string, in algorithms.Input, seed int64, seq steps.Sequence, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", algorithm, ulid.Make())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: algorithm,
		Timestamp: time.Now(),
		Seed:      seed,
		Input:     in.Values,
		Target:    in.Target,
		Steps:     len(seq),
		Metrics:   metrics,
	}
	if len(seq) > 0 {
		meta.Final = seq.Last().Values()
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, stepsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(stepsHeader); err != nil {
		return "", err
	}
	for i, step := range seq {
		if err := w.Write(encodeStep(i, step)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first. Unreadable directories are
// skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSteps rebuilds the recorded step sequence of a run.
func (s *Store) LoadSteps(runID string) (steps.Sequence, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRun, err)
	}
	if len(records) < 2 {
		return steps.Sequence{}, nil
	}

	seq := make(steps.Sequence, 0, len(records)-1)
	for i, record := range records[1:] {
		step, err := decodeStep(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptRun, i+1, err)
		}
		seq = append(seq, step)
	}
	return seq, nil
}

func encodeStep(i int, step steps.Step) []string {
	states := make([]string, len(step.Array))
	for j, e := range step.Array {
		states[j] = string(e.State)
	}
	row := []string{
		strconv.Itoa(i),
		string(step.Kind),
		step.Description,
		joinInts(step.Values()),
		strings.Join(states, " "),
		"",
		"",
		"",
	}
	if step.Comparing != nil {
		row[5] = joinInts(step.Comparing[:])
	}
	if step.Swapping != nil {
		row[6] = joinInts(step.Swapping[:])
	}
	if step.SwapPositions != nil {
		row[7] = joinInts([]int{step.SwapPositions.From, step.SwapPositions.To})
	}
	return row
}

func decodeStep(record []string) (steps.Step, error) {
	values, err := splitInts(record[3])
	if err != nil {
		return steps.Step{}, err
	}
	states := strings.Fields(record[4])
	if len(states) != len(values) {
		return steps.Step{}, fmt.Errorf("%d states for %d values", len(states), len(values))
	}

	step := steps.Step{
		Array:       steps.FromValues(values),
		Kind:        steps.Kind(record[1]),
		Description: record[2],
	}
	for j, st := range states {
		state := steps.ElementState(st)
		if !state.Valid() {
			return steps.Step{}, fmt.Errorf("unknown state %q", st)
		}
		step.Array[j].State = state
	}

	if step.Comparing, err = decodePair(record[5]); err != nil {
		return steps.Step{}, err
	}
	if step.Swapping, err = decodePair(record[6]); err != nil {
		return steps.Step{}, err
	}
	move, err := decodePair(record[7])
	if err != nil {
		return steps.Step{}, err
	}
	if move != nil {
		step.SwapPositions = &steps.Move{From: move[0], To: move[1]}
	}
	return step, nil
}

func decodePair(field string) (*steps.Pair, error) {
	if field == "" {
		return nil, nil
	}
	v, err := splitInts(field)
	if err != nil {
		return nil, err
	}
	if len(v) != 2 {
		return nil, fmt.Errorf("expected a pair, got %q", field)
	}
	return &steps.Pair{v[0], v[1]}, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func splitInts(field string) ([]int, error) {
	parts := strings.Fields(field)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
