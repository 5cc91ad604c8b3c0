package handlers

import (
	"sort"
	"strconv"
	"strings"
)

// ParseSenseNum expands a German sense-number annotation such as "1", "1a",
// "1-3", "1,2,4" or "1/2" into the sorted list of individual sense strings
// it denotes (original `sense_num`, whose grammar rule separated these
// forms into distinct captures; here they all ride inside one Term token,
// so the splitting happens in plain Go instead of the grammar).
func ParseSenseNum(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if expanded, ok := expandDashRange(part); ok {
			out = append(out, expanded...)
			continue
		}
		if idx := strings.IndexAny(part, "/+"); idx > 0 {
			first := strings.TrimSpace(part[:idx])
			last := strings.TrimSpace(part[idx+1:])
			if first != "" {
				out = append(out, first)
			}
			if last != "" {
				out = append(out, last)
			}
			continue
		}
		out = append(out, part)
	}

	sort.Strings(out)
	return out
}

// expandDashRange expands "N-M" (both plain integers) into the inclusive
// list of sense strings between them (original `num_range`).
func expandDashRange(part string) ([]string, bool) {
	idx := strings.IndexAny(part, "-—")
	if idx <= 0 || idx == len(part)-1 {
		return nil, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(part[:idx]))
	if err != nil {
		return nil, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
	if err != nil || end < start {
		return nil, false
	}

	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, strconv.Itoa(i))
	}
	return out, true
}
