package calllog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/ports"
)

const defaultFileName = "history.jsonl"

// JSONLog appends call records to <root>/.sinfoniactl/history.jsonl,
// one JSON object per line.
type JSONLog struct {
	root string
	file string
}

type Option func(*JSONLog)

func WithFileName(name string) Option {
	return func(l *JSONLog) { l.file = name }
}

func NewJSONLog(root string, opts ...Option) *JSONLog {
	l := &JSONLog{
		root: root,
		file: defaultFileName,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.CallLog = (*JSONLog)(nil)

func (l *JSONLog) path() string {
	return filepath.Join(l.root, ".sinfoniactl", l.file)
}

func (l *JSONLog) Append(rec domain.CallRecord) error {
	path := l.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "calllog.append",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return &domain.OpError{
			Op:   "calllog.append",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	b = append(b, '\n')

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.OpError{
			Op:   "calllog.append",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return &domain.OpError{
			Op:   "calllog.append",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// List returns records newest-first. Malformed lines are skipped so a
// damaged history file never blocks the CLI.
func (l *JSONLog) List(limit int) ([]domain.CallRecord, error) {
	f, err := os.Open(l.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.CallRecord{}, nil
		}
		return nil, &domain.OpError{
			Op:   "calllog.list",
			Kind: domain.KindExecution,
			Path: l.path(),
			Err:  err,
		}
	}
	defer f.Close()

	var recs []domain.CallRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec domain.CallRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "calllog.list",
			Kind: domain.KindExecution,
			Path: l.path(),
			Err:  err,
		}
	}

	// Newest first.
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}
