package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fptetris/stage"
)

// ConfigEditor edits the rule knobs of the running game in place.
type ConfigEditor struct {
	game func() *stage.Stage
}

func NewConfigEditor(game func() *stage.Stage) *ConfigEditor {
	return &ConfigEditor{game: game}
}

func (ce *ConfigEditor) Render() {
	if !imgui.BeginV("Rules", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := ce.game()
	if s == nil {
		imgui.Text("No game running")
		imgui.End()
		return
	}

	cfg := s.Config()
	val := reflect.ValueOf(&cfg).Elem()
	changed := false

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		if renderField(field, val.Field(field.Index)) {
			changed = true
		}
	}

	if changed {
		s.SetConfig(cfg)
	}
	imgui.End()
}

// renderField draws an editor for one field and reports whether it changed.
func renderField(field FieldInfo, val reflect.Value) bool {
	switch field.Kind {
	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(field.Name, &v) {
			return SetField(val, v)
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", field.Name), &v) {
			return SetField(val, float64(v))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", field.Name), &v) {
			return SetField(val, int64(v))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", field.Name, val.Interface()))
	}
	return false
}

// SetField assigns v to a settable bool, float or int field. Negative
// numbers are rejected since every numeric knob is a duration or count.
func SetField(field reflect.Value, v any) bool {
	if !field.CanSet() {
		return false
	}

	switch x := v.(type) {
	case bool:
		if field.Kind() != reflect.Bool {
			return false
		}
		field.SetBool(x)
	case float64:
		if x < 0 || (field.Kind() != reflect.Float64 && field.Kind() != reflect.Float32) {
			return false
		}
		field.SetFloat(x)
	case int64:
		if x < 0 || !field.CanInt() {
			return false
		}
		field.SetInt(x)
	default:
		return false
	}
	return true
}
