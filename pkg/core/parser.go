package core

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// taskLine matches `name(key1, key2, ...) weight`. The weight is restricted
// to a non-negative decimal literal by construction.
var taskLine = regexp.MustCompile(`^(\w+)\((.*)\)\s*([\d.]+)$`)

// ParseTasks reads the task document and returns one descriptor per valid
// line. Parsing is best-effort: malformed lines, unknown function names,
// arity mismatches, and malformed weights are reported through warn and
// skipped, never fatal. Only a failure to read the document itself is
// returned as an error.
func ParseTasks(r io.Reader, reg *Registry, warn func(format string, args ...any)) ([]TaskDescriptor, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	var tasks []TaskDescriptor
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		match := taskLine.FindStringSubmatch(line)
		if match == nil {
			warn("Skipped line %d: could not parse syntax: %q", lineNo, line)
			continue
		}
		name, keysStr, weightStr := match[1], match[2], match[3]

		arity, registered := reg.Arity(name)
		if !registered {
			warn("Skipped line %d: function %q not found", lineNo, name)
			continue
		}

		keys := parseKeys(keysStr)
		if len(keys) != arity {
			warn("Skipped line %d: %q expects %d args, but %d keys were provided", lineNo, name, arity, len(keys))
			continue
		}

		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil || math.IsNaN(weight) || weight < 0 {
			warn("Skipped line %d: invalid weight %q for %q", lineNo, weightStr, name)
			continue
		}

		tasks = append(tasks, TaskDescriptor{
			Name:          name,
			ParameterKeys: keys,
			Weight:        weight,
			Line:          lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("core: reading task document: %w", err)
	}
	return tasks, nil
}

func parseKeys(keysStr string) []string {
	if strings.TrimSpace(keysStr) == "" {
		return nil
	}
	parts := strings.Split(keysStr, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		keys = append(keys, strings.TrimSpace(part))
	}
	return keys
}
