package trace

import (
	"fmt"
	"strings"
)

// Level controls how much of the pipeline is traced.
type Level uint8

const (
	LevelOff    Level = iota // трассировка выключена
	LevelPhase               // driver и фазы компиляции
	LevelDetail              // дополнительно события по файлам
)

var levelNames = [...]string{"off", "phase", "detail"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value into a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected off|phase|detail)", s)
}

// Allows reports whether events of the given scope pass this level.
func (l Level) Allows(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePhase
	case LevelDetail:
		return true
	default:
		return false
	}
}
