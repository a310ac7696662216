package input

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Rune aliases for keys that can't be bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"dot":       '.',
	"backslash": '\\',
}

const (
	sectionKeys  = "keys"  // named key -> action
	sectionRunes = "runes" // character -> action
)

// LoadKeyConfig parses keymap sections into a sparse override KeyTable
// Only sections/keys present in raw are populated
// Returns error on unknown section, action names or invalid key names
// Rune keys are matched as given; a case-folded source such as viper maps "K" onto 'k'
func LoadKeyConfig(raw map[string]any) (*KeyTable, error) {
	kt := &KeyTable{}

	for section, data := range raw {
		sectionMap, ok := data.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [%s]: expected table, got %T", section, data)
		}

		switch strings.ToLower(section) {
		case sectionKeys:
			keyMap, err := parseSpecialKeySection(section, sectionMap)
			if err != nil {
				return nil, err
			}
			kt.SpecialKeys = keyMap
		case sectionRunes:
			runeMap, err := parseRuneSection(section, sectionMap)
			if err != nil {
				return nil, err
			}
			kt.Runes = runeMap
		default:
			return nil, fmt.Errorf("unknown keymap section [%s]", section)
		}
	}

	return kt, nil
}

// parseRuneSection parses a section of rune key -> action name bindings
func parseRuneSection(section string, data map[string]any) (map[rune]KeyEntry, error) {
	result := make(map[rune]KeyEntry, len(data))

	for keyStr, val := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		entry, err := resolveValue(val)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = entry
	}

	return result, nil
}

// parseSpecialKeySection parses a section of Key name -> action name bindings
func parseSpecialKeySection(section string, data map[string]any) (map[Key]KeyEntry, error) {
	result := make(map[Key]KeyEntry, len(data))

	for keyStr, val := range data {
		k, ok := KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		entry, err := resolveValue(val)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[k] = entry
	}

	return result, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveValue(val any) (KeyEntry, error) {
	name, ok := val.(string)
	if !ok {
		return KeyEntry{}, fmt.Errorf("value must be string, got %T", val)
	}
	return resolveAction(name)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		if s := suggestAction(name); s != "" {
			return KeyEntry{}, fmt.Errorf("unknown action: %q (did you mean %q?)", name, s)
		}
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// suggestAction returns the closest action name within edit distance 3
func suggestAction(name string) string {
	best, bestDist := "", 4
	for _, candidate := range ActionNames() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.Behavior == BehaviorNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Behavior == BehaviorNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}

	return result
}
