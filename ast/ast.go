// Package ast defines the syntax tree consumed by lowering.  The concrete
// grammar and the parser producing these nodes live outside this module: this
// package is only the contract between the front end and the middle tier.
package ast

import "cflatc/report"

// Node is the abstract interface for all syntax tree nodes.
type Node interface {
	// The text span of the node.
	Span() *report.TextSpan
}

// NodeBase is a utility base struct for all syntax tree nodes.
type NodeBase struct {
	// The span over which the node occurs.
	span *report.TextSpan
}

// NewNodeBaseOn creates a new node base with the given span.
func NewNodeBaseOn(span *report.TextSpan) NodeBase {
	return NodeBase{span: span}
}

// NewNodeBaseOver creates a new node base spanning over two spans.
func NewNodeBaseOver(start, end *report.TextSpan) NodeBase {
	return NodeBase{span: report.NewSpanOver(start, end)}
}

func (nb NodeBase) Span() *report.TextSpan {
	return nb.span
}

// File represents one parsed translation unit: an ordered sequence of top
// level definitions.
type File struct {
	// The representative name of the unit (typically its file name).
	Name string

	// The top level definitions in declaration order.
	Defs []Def
}
