package script

import (
	"strconv"

	"github.com/dop251/goja"

	"nematode/pkg/document"
	"nematode/pkg/layout"
)

// treeContext holds shared state for the layout bindings. It maintains an
// element-to-proxy cache so the same JS object is returned for the same
// *layout.Element (needed for === identity checks).
type treeContext struct {
	vm    *goja.Runtime
	cache map[*layout.Element]goja.Value
	root  *layout.Element
}

// registerLayout sets up the global `layout` object on the goja runtime.
func registerLayout(vm *goja.Runtime) *treeContext {
	ctx := &treeContext{
		vm:    vm,
		cache: make(map[*layout.Element]goja.Value),
	}

	obj := vm.NewObject()
	obj.Set("element", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("Failed to execute 'element': 1 argument required"))
		}
		n := document.Node{Tag: call.Arguments[0].String()}
		ctx.readOptions(&n, call.Argument(1))
		el, err := document.Build(n)
		if err != nil {
			panic(vm.NewTypeError("Failed to execute 'element': %s", err.Error()))
		}
		return ctx.elementProxy(el)
	})
	obj.Set("setRoot", func(call goja.FunctionCall) goja.Value {
		el := ctx.unwrapElement(call.Argument(0))
		if el == nil {
			panic(vm.NewTypeError("Failed to execute 'setRoot': parameter is not an element"))
		}
		ctx.root = el
		return goja.Undefined()
	})
	obj.Set("root", func(call goja.FunctionCall) goja.Value {
		if ctx.root == nil {
			return goja.Null()
		}
		return ctx.elementProxy(ctx.root)
	})

	vm.Set("layout", obj)
	return ctx
}

// readOptions copies the optional second argument of layout.element into n.
func (ctx *treeContext) readOptions(n *document.Node, opts goja.Value) {
	if opts == nil || goja.IsUndefined(opts) || goja.IsNull(opts) {
		return
	}
	obj := opts.ToObject(ctx.vm)

	number := func(key string) *float64 {
		v := obj.Get(key)
		if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
			return nil
		}
		f := v.ToFloat()
		return &f
	}
	n.X = number("x")
	n.Y = number("y")
	n.Width = number("width")
	n.Height = number("height")
	n.Margin = ctx.sides(obj.Get("margin"))
	n.Padding = ctx.sides(obj.Get("padding"))

	if v := obj.Get("display"); v != nil && !goja.IsUndefined(v) {
		n.Display = v.String()
	}
	if v := obj.Get("style"); v != nil && !goja.IsUndefined(v) {
		n.Style = v.String()
	}
}

// sides accepts a number or an array of one to four numbers.
func (ctx *treeContext) sides(v goja.Value) []float64 {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok || obj.ClassName() != "Array" {
		return []float64{v.ToFloat()}
	}
	length := int(obj.Get("length").ToInteger())
	out := make([]float64, length)
	for i := range out {
		out[i] = obj.Get(strconv.Itoa(i)).ToFloat()
	}
	return out
}

// elementArray creates a JS array of element proxies.
func (ctx *treeContext) elementArray(elements []*layout.Element) goja.Value {
	arr := ctx.vm.NewArray()
	for i, el := range elements {
		arr.Set(strconv.Itoa(i), ctx.elementProxy(el))
	}
	arr.Set("length", len(elements))
	return arr
}

// elementProxy creates (or retrieves from cache) a JS DynamicObject wrapping an element.
func (ctx *treeContext) elementProxy(el *layout.Element) goja.Value {
	if v, ok := ctx.cache[el]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&elementAccessor{ctx: ctx, el: el})
	ctx.cache[el] = v
	return v
}

// unwrapElement extracts the *layout.Element behind a proxy.
func (ctx *treeContext) unwrapElement(val goja.Value) *layout.Element {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		return nil
	}
	for el, cached := range ctx.cache {
		if cached.SameAs(obj) {
			return el
		}
	}
	return nil
}
