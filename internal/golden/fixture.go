package golden

// #region imports
import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// #endregion

// #region case

// Case is one golden fixture: a real message, the label it must receive,
// and an optional note saying why. Fixtures live in a line-delimited JSON
// file, one object per line.
type Case struct {
	Msg      string `json:"msg"`
	Expected string `json:"expected"`
	Note     string `json:"note,omitempty"`
}

// #endregion

// #region loader

// LoadCases reads and parses a JSONL fixture file. Blank lines are
// skipped; a malformed line fails with its line number.
func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures %s: %w", path, err)
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var c Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("parse fixtures %s line %d: %w", path, lineNo, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return cases, nil
}

// #endregion
