package script

import (
	"github.com/dop251/goja"

	"nematode/pkg/layout"
)

var elementKeys = []string{
	"tagName", "block", "parent", "children",
	"x", "y", "relativeX", "relativeY", "contentX", "contentY",
	"width", "height", "effectiveWidth", "effectiveHeight",
	"appendChild",
}

// elementAccessor implements goja.DynamicObject over a layout element.
// Geometry is read on every access, never cached.
type elementAccessor struct {
	ctx *treeContext
	el  *layout.Element
}

func (e *elementAccessor) Get(key string) goja.Value {
	vm := e.ctx.vm

	switch key {
	case "tagName":
		return vm.ToValue(e.el.TagName())
	case "block":
		return vm.ToValue(e.el.IsBlock())
	case "parent":
		if p := e.el.Parent(); p != nil {
			return e.ctx.elementProxy(p)
		}
		return goja.Null()
	case "children":
		return e.ctx.elementArray(e.el.Children())
	case "x":
		return vm.ToValue(e.el.X())
	case "y":
		return vm.ToValue(e.el.Y())
	case "relativeX":
		return vm.ToValue(e.el.RelativeX())
	case "relativeY":
		return vm.ToValue(e.el.RelativeY())
	case "contentX":
		return vm.ToValue(e.el.ContentX())
	case "contentY":
		return vm.ToValue(e.el.ContentY())
	case "width":
		return vm.ToValue(e.el.Width())
	case "height":
		return vm.ToValue(e.el.Height())
	case "effectiveWidth":
		return vm.ToValue(e.el.EffectiveWidth())
	case "effectiveHeight":
		return vm.ToValue(e.el.EffectiveHeight())
	case "appendChild":
		return vm.ToValue(e.appendChildFn())
	}
	return goja.Undefined()
}

// appendChildFn returns a JS function that implements el.appendChild(child).
// Elements cannot be moved once attached.
func (e *elementAccessor) appendChildFn() func(call goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'appendChild': 1 argument required"))
		}
		child := e.ctx.unwrapElement(call.Arguments[0])
		if child == nil {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'appendChild': parameter is not an element"))
		}
		if err := layout.Attach(e.el, child); err != nil {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'appendChild': %s", err.Error()))
		}
		return e.ctx.elementProxy(child)
	}
}

func (e *elementAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "block":
		e.el.SetBlock(val.ToBoolean())
		return true
	}
	return false
}

func (e *elementAccessor) Has(key string) bool {
	for _, k := range elementKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (e *elementAccessor) Delete(key string) bool {
	return false
}

func (e *elementAccessor) Keys() []string {
	return elementKeys
}
