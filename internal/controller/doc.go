// Package controller owns the list view state and turns user intent into renders.
//
// A Controller holds the only mutable pagination.ViewState. Every operation clamps or
// validates its input, recomputes the visible page, pushes the result to a Sink and
// persists the new state. User intent arrives through a Bridge, on which handlers are
// registered explicitly; Bind connects a Bridge to a Controller.
package controller
