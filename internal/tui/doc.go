// Package tui provides the interactive Bubble Tea front end for browsing posts.
//
// BrowseModel is both a controller.Sink, receiving each rendered page, and an
// event source: key presses are turned into page, sort order and page size
// requests on a controller.Bridge. It never changes the view state itself.
package tui
