package parser

import (
	"github.com/slatelang/slate/pkg/ast"
	"github.com/slatelang/slate/pkg/kernel"
)

// lower converts expr into kernel form when the whole subtree is foldable,
// otherwise it returns expr unchanged. Only declaration initializers and
// assignment values are lowered; the folder never needs other positions.
func (p *parser) lower(expr any) any {
	if k, ok := p.toKernel(expr); ok {
		return k
	}
	return expr
}

// toKernel translates names, int/bool literals and binary operators. Any
// other shape (strings, calls, lists) aborts the translation for the whole
// subtree so a value is never half-lowered.
func (p *parser) toKernel(expr any) (kernel.Node, bool) {
	switch e := expr.(type) {
	case *ast.Constant:
		switch e.Value.(type) {
		case int, bool:
			return &kernel.Const{Value: e.Value}, true
		}
		return nil, false
	case *ast.Name:
		return &kernel.Name{ID: e.ID, Usage: &kernel.Load{}, IsVar: p.declared[e.ID]}, true
	case *ast.BinOp:
		left, ok := p.toKernel(e.Left)
		if !ok {
			return nil, false
		}
		right, ok := p.toKernel(e.Right)
		if !ok {
			return nil, false
		}
		return &kernel.BinOp{Op: e.Op, Left: left, Right: right}, true
	}
	return nil, false
}
