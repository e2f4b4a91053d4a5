package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/togglenet/core"
)

// Sentinel errors for syntax failures. Wrapped values carry the offending
// token; match with errors.Is.
var (
	// ErrEmptyLine - the line is empty or whitespace only.
	ErrEmptyLine = errors.New("parse: empty line")
	// ErrEndstate - the [...] endstate block is missing or malformed.
	ErrEndstate = errors.New("parse: malformed endstate")
	// ErrEndstateChar - the endstate holds a character other than '.' or '#'.
	ErrEndstateChar = errors.New("parse: invalid endstate character")
	// ErrStep - a (...) step block is malformed.
	ErrStep = errors.New("parse: malformed step")
	// ErrStepIndex - a step index is not a number or is out of range.
	ErrStepIndex = errors.New("parse: invalid step index")
	// ErrDuplicateIndex - a step names the same position twice.
	ErrDuplicateIndex = errors.New("parse: duplicate index in step")
	// ErrNoSteps - the line carries no step blocks at all.
	ErrNoSteps = errors.New("parse: no steps provided")
	// ErrCounts - the {...} count block is malformed.
	ErrCounts = errors.New("parse: malformed count list")
)

// Line parses one puzzle line into a Problem. The endstate length fixes the
// position count; steps and counts are validated against it. Range limits
// are enforced by core.NewProblem, so its sentinels pass through unchanged.
func Line(s string) (*core.Problem, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, ErrEmptyLine
	}

	open := strings.IndexByte(trimmed, '[')
	if open < 0 {
		return nil, fmt.Errorf("%w: missing '['", ErrEndstate)
	}
	rel := strings.IndexByte(trimmed[open+1:], ']')
	if rel < 0 {
		return nil, fmt.Errorf("%w: missing ']'", ErrEndstate)
	}
	closing := open + 1 + rel

	endstate := trimmed[open+1 : closing]
	if endstate == "" {
		return nil, fmt.Errorf("%w: endstate is empty", ErrEndstate)
	}
	positions := len(endstate)

	var target uint64
	for i := 0; i < len(endstate); i++ {
		switch endstate[i] {
		case '.':
		case '#':
			target |= uint64(1) << uint(i)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrEndstateChar, endstate[i], i)
		}
	}

	rest := trimmed[closing+1:]
	stepsPart, countsPart := rest, ""
	if brace := strings.IndexByte(rest, '{'); brace >= 0 {
		stepsPart, countsPart = rest[:brace], rest[brace:]
	}

	steps, err := parseSteps(stepsPart, positions)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	var counts []uint64
	if countsPart != "" {
		if counts, err = parseCounts(countsPart); err != nil {
			return nil, err
		}
	}

	return core.NewProblem(positions, target, steps, counts)
}

// parseSteps collects every (...) block from section. Indices must fall in
// 0..positions-1 and may not repeat within one step.
func parseSteps(section string, positions int) ([]uint64, error) {
	var (
		steps  []uint64
		cursor int
	)
	for {
		rel := strings.IndexByte(section[cursor:], '(')
		if rel < 0 {
			break
		}
		open := cursor + rel
		rel = strings.IndexByte(section[open+1:], ')')
		if rel < 0 {
			return nil, fmt.Errorf("%w: missing ')'", ErrStep)
		}
		closing := open + 1 + rel

		body := strings.TrimSpace(section[open+1 : closing])
		if body == "" {
			return nil, fmt.Errorf("%w: empty step", ErrStep)
		}

		var mask uint64
		for _, token := range strings.Split(body, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				return nil, fmt.Errorf("%w: empty index", ErrStep)
			}
			idx, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrStepIndex, token)
			}
			if idx < 0 || idx >= positions {
				return nil, fmt.Errorf("%w: index %d, want 0..%d", ErrStepIndex, idx, positions-1)
			}
			bit := uint64(1) << uint(idx)
			if mask&bit != 0 {
				return nil, fmt.Errorf("%w: index %d", ErrDuplicateIndex, idx)
			}
			mask |= bit
		}

		steps = append(steps, mask)
		cursor = closing + 1
	}
	return steps, nil
}

// parseCounts reads the {...} block. section starts at the opening brace.
// Length validation is left to core.NewProblem.
func parseCounts(section string) ([]uint64, error) {
	rel := strings.IndexByte(section[1:], '}')
	if rel < 0 {
		return nil, fmt.Errorf("%w: missing '}'", ErrCounts)
	}

	body := strings.TrimSpace(section[1 : 1+rel])
	if body == "" {
		return nil, fmt.Errorf("%w: empty count list", ErrCounts)
	}

	tokens := strings.Split(body, ",")
	counts := make([]uint64, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty count value", ErrCounts)
		}
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrCounts, token)
		}
		counts = append(counts, v)
	}
	return counts, nil
}
