package script

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"nematode/pkg/layout"
)

// Engine executes JavaScript that builds and inspects a layout tree.
type Engine struct {
	vm   *goja.Runtime
	tree *treeContext
}

// New creates an engine with a fresh goja runtime. Console output goes to
// log; nil discards it.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := goja.New()
	e := &Engine{vm: vm}

	c := &consoleAPI{log: log}
	c.register(vm)

	e.tree = registerLayout(vm)
	return e
}

// Run executes src. name is used in stack traces. Scripts share one
// runtime, so globals and elements persist between calls.
func (e *Engine) Run(name, src string) error {
	if _, err := e.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// RunFile reads and executes the script at path.
func (e *Engine) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.Run(path, string(src))
}

// Root returns the element registered with layout.setRoot, or nil.
func (e *Engine) Root() *layout.Element {
	return e.tree.root
}
