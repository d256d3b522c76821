// Package internal implements the grid engine.
//
// This package contains the Grid type, its functional options and the
// event reconcilers. The root datagrid package re-exports the public
// surface; applications never import this package directly.
package internal
