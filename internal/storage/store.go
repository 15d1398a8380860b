package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
)

const (
	metadataFile  = "metadata.json"
	tracesFile    = "traces.csv"
	metricsFile   = "metrics.csv"
	animationFile = "animation.gif"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string         `json:"id"`
	Algorithm   string         `json:"algorithm"`
	Kind        string         `json:"kind"`
	Source      string         `json:"source"`
	Timestamp   time.Time      `json:"timestamp"`
	Seed        int64          `json:"seed"`
	Rows        int            `json:"rows"`
	Cols        int            `json:"cols"`
	Budget      int            `json:"budget"`
	Frames      int            `json:"frames"`
	DelayMS     float64        `json:"delay_ms"`
	MaxEvents   int            `json:"max_events"`
	TotalEvents int            `json:"total_events"`
	ElapsedMS   int64          `json:"elapsed_ms"`
	Config      *config.Config `json:"config"`
}

// Save writes a run directory holding the metadata, the per-row trace
// lengths and the rendered animation. It returns the new run id.
func (s *Store) Save(cfg *config.Config, res *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", res.Algorithm, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: res.Algorithm.String(),
		Kind:      res.Kind.String(),
		Source:    res.Source,
		Timestamp: time.Now(),
		Seed:      res.Seed,
		Rows:      res.Rows,
		Cols:      res.Cols,
		Budget:    res.Budget,
		Frames:    len(res.Frames),
		DelayMS:   float64(res.Delay) / float64(time.Millisecond),
		ElapsedMS: res.Elapsed.Milliseconds(),
		Config:    cfg,
	}
	for _, n := range res.TraceLens {
		meta.MaxEvents = max(meta.MaxEvents, n)
		meta.TotalEvents += n
	}

	if err := writeRun(runDir, cfg, res, meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, cfg *config.Config, res *experiment.Result, meta RunMetadata) error {
	if err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		return writeJSON(w, meta)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(runDir, tracesFile), func(w io.Writer) error {
		return writeTraceLengths(w, res.TraceLens)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(runDir, metricsFile), func(w io.Writer) error {
		return writeMetrics(w, res.Metrics)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(runDir, animationFile), func(w io.Writer) error {
		return res.WriteGIF(w, cfg.Output)
	})
}

// writeFile creates path and reports the first error of write or Close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTraceLengths(out io.Writer, lens []int) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"row", "events"}); err != nil {
		return err
	}
	for r, n := range lens {
		if err := w.Write([]string{strconv.Itoa(r), strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeMetrics stores one line per frame with a column per metric.
func writeMetrics(out io.Writer, series map[string][]float64) error {
	names := make([]string, 0, len(series))
	frames := 0
	for name, values := range series {
		names = append(names, name)
		frames = max(frames, len(values))
	}
	sort.Strings(names)

	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"frame"}, names...)); err != nil {
		return err
	}
	record := make([]string, len(names)+1)
	for i := 0; i < frames; i++ {
		record[0] = strconv.Itoa(i)
		for j, name := range names {
			record[j+1] = ""
			if values := series[name]; i < len(values) {
				record[j+1] = strconv.FormatFloat(values[i], 'f', 6, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every stored run, newest first. Directories without
// readable metadata are skipped.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
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

// LoadTraceLengths reads back the number of recorded events per row.
func (s *Store) LoadTraceLengths(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, tracesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []int{}, nil
	}

	lens := make([]int, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 2 {
			return nil, fmt.Errorf("%s: malformed record %v", tracesFile, record)
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tracesFile, err)
		}
		lens = append(lens, n)
	}
	return lens, nil
}

// LoadMetrics reads back the per-frame metric series of a run.
func (s *Store) LoadMetrics(runID string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, metricsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	series := make(map[string][]float64)
	if len(records) == 0 {
		return series, nil
	}

	names := records[0][1:]
	for _, record := range records[1:] {
		for j, name := range names {
			if record[j+1] == "" {
				continue
			}
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", metricsFile, err)
			}
			series[name] = append(series[name], v)
		}
	}
	return series, nil
}

// AnimationPath is where Save put the run's GIF.
func (s *Store) AnimationPath(runID string) string {
	return filepath.Join(s.baseDir, runID, animationFile)
}
