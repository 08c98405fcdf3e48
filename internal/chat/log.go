package chat

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"nutraintel/pkg/llm"
)

const answerLogLimit = 200

// QueryLog appends one line per answered question to a plain text file.
// A nil QueryLog is a no-op, so logging stays optional.
type QueryLog struct {
	mu   sync.Mutex
	path string
}

func NewQueryLog(path string) *QueryLog {
	if path == "" {
		return nil
	}
	return &QueryLog{path: path}
}

// Append writes "time<TAB>question<TAB>truncated answer" to the log file.
func (l *QueryLog) Append(question, answer string) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\n",
		time.Now().Format(time.RFC3339),
		sanitize(question),
		sanitize(llm.Truncate(answer, answerLogLimit)))

	_, err = f.WriteString(line)
	return err
}

// sanitize keeps the log line-oriented: embedded newlines and tabs collapse
// to spaces.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
