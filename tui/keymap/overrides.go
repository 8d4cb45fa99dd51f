package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/kakapo/kakapo/config"
	"github.com/kakapo/kakapo/errors"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides applies keybinding overrides to any keymap struct. Config
// keys are snake_case field names; embedded structs are walked too.
//
//	ApplyOverrides(&km, overrides) // overrides["toggle_sidebar"] -> km.ToggleSidebar
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) {
	if overrides == nil {
		return
	}
	v, ok := structValue(km)
	if !ok {
		return
	}
	walkBindings(v, func(name string, field reflect.Value) {
		keys, ok := overrides[name]
		if !ok || len(keys) == 0 {
			return
		}
		// Keep the help description; only keys change.
		desc := field.Interface().(key.Binding).Help().Desc
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], desc),
		)))
	})
}

// UnknownOverrides returns the sorted override names that match no binding
// in km.
func UnknownOverrides(km interface{}, overrides config.KeybindingSectionConfig) []string {
	v, ok := structValue(km)
	if !ok {
		return nil
	}
	known := make(map[string]bool)
	walkBindings(v, func(name string, _ reflect.Value) {
		known[name] = true
	})

	var unknown []string
	for name := range overrides {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ValidateOverrides returns a CONFIG_VALIDATION error naming every override
// that matches no binding in km.
func ValidateOverrides(km interface{}, overrides config.KeybindingSectionConfig) error {
	unknown := UnknownOverrides(km, overrides)
	if len(unknown) == 0 {
		return nil
	}
	return errors.New(errors.ErrCodeConfigValidation,
		"unknown keybinding action(s): "+strings.Join(unknown, ", ")).
		WithDetail("actions", unknown)
}

func structValue(km interface{}) (reflect.Value, bool) {
	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, false
	}
	v = v.Elem()
	return v, v.Kind() == reflect.Struct
}

// walkBindings calls fn for each settable key.Binding field, recursing into
// embedded structs.
func walkBindings(v reflect.Value, fn func(name string, field reflect.Value)) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if !field.CanSet() {
			continue
		}
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			walkBindings(field, fn)
			continue
		}
		if fieldType.Type != bindingType {
			continue
		}
		fn(camelToSnake(fieldType.Name), field)
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ToggleSidebar -> toggle_sidebar, PageUp -> page_up
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
