package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinrush/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(target *Target) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityId = target.Selected

	if ci.selectedEntityId == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	world := target.World
	if !world.Alive(ci.selectedEntityId) {
		imgui.Text(fmt.Sprintf("Entity %s is no longer alive", ci.selectedEntityId))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", ci.selectedEntityId))
	imgui.Text(fmt.Sprintf("Index %d, generation %d", ci.selectedEntityId.Index(), ci.selectedEntityId.Generation()))
	imgui.Separator()

	for _, compType := range world.ComponentTypes(ci.selectedEntityId) {
		if imgui.TreeNodeStr(compType.String()) {
			ci.renderComponent(ComponentValue(world, ci.selectedEntityId, compType))
			imgui.TreePop()
		}
	}

	imgui.End()
}

// ComponentValue returns the addressable component of the given type attached
// to id, or the zero Value when there is none. Setting its fields edits the
// component in place.
func ComponentValue(world *ecs.World, id ecs.EntityId, compType reflect.Type) reflect.Value {
	component := world.GetComponent(id, compType)
	if component == nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(component).Elem()
}

func (ci *ComponentInspectorComponent) renderComponent(val reflect.Value) {
	if !val.IsValid() {
		imgui.Text("<missing>")
		return
	}
	if val.Kind() != reflect.Struct {
		ci.renderField("value", val)
		return
	}

	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderField(field.Name, fieldVal)
	}
}

func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	label := fmt.Sprintf("##%s", name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		ci.label(name, 150)
		if imgui.InputInt(label, &v) {
			SetField(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(min(val.Uint(), 1<<31-1))
		ci.label(name, 150)
		if imgui.InputInt(label, &v) && v >= 0 {
			SetField(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		ci.label(name, 150)
		if imgui.InputFloat(label, &v) {
			SetField(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			SetField(val, v)
		}

	case reflect.String:
		v := val.String()
		ci.label(name, 200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			SetField(val, v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ci.renderComponent(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}

func (ci *ComponentInspectorComponent) label(name string, width float32) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(width)
}

// SetField writes value into the settable field val, converting between
// numeric kinds. It reports whether the field was written.
func SetField(val reflect.Value, value any) bool {
	if !val.CanSet() {
		return false
	}

	switch v := value.(type) {
	case int64:
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.OverflowInt(v) {
				return false
			}
			val.SetInt(v)
			return true
		}
	case uint64:
		switch val.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if val.OverflowUint(v) {
				return false
			}
			val.SetUint(v)
			return true
		}
	case float64:
		switch val.Kind() {
		case reflect.Float32, reflect.Float64:
			val.SetFloat(v)
			return true
		}
	case bool:
		if val.Kind() == reflect.Bool {
			val.SetBool(v)
			return true
		}
	case string:
		if val.Kind() == reflect.String {
			val.SetString(v)
			return true
		}
	}
	return false
}
