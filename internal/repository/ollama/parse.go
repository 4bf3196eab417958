package ollama

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	arrayRe       = regexp.MustCompile(`(?s)\[.*?\]`)
)

// parseStringList extracts a list of strings from model output. Models
// rarely obey format instructions exactly, so it tries progressively looser
// interpretations: the whole content as a JSON array, then any fenced code
// block, then the first bracketed span, and finally non-empty prose lines.
func parseStringList(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty completion")
	}

	if list, ok := tryJSONArray(content); ok {
		return list, nil
	}

	for _, m := range fencedBlockRe.FindAllStringSubmatch(content, -1) {
		if list, ok := tryJSONArray(strings.TrimSpace(m[1])); ok {
			return list, nil
		}
	}

	if span := arrayRe.FindString(content); span != "" {
		if list, ok := tryJSONArray(span); ok {
			return list, nil
		}
	}

	lines := proseLines(content)
	if len(lines) == 0 {
		return nil, fmt.Errorf("no parseable list in completion")
	}
	return lines, nil
}

func tryJSONArray(s string) ([]string, bool) {
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, false
	}
	out := list[:0]
	for _, item := range list {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// proseLines treats each non-empty line as one entry, stripping list
// markers like "1." or "-".
func proseLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
