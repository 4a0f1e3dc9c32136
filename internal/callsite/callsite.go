// Package callsite recovers the location and argument source text of a
// debug call, the information a macro would capture at compile time.
package callsite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Unknown is used as the name of an argument whose source is unavailable.
const Unknown = "?"

// Site identifies a call location.
type Site struct {
	// File is the base name of the source file.
	File string
	// Path is the full path recorded in the binary.
	Path string
	// Line is the line of the call.
	Line int
}

// Caller returns the call site skip frames above the caller of Caller, as
// runtime.Caller counts them.
func Caller(skip int) Site {
	_, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: Unknown, Path: "", Line: 0}
	}
	return Site{File: filepath.Base(path), Path: path, Line: line}
}

type key struct {
	path string
	line int
	name string
}

type result struct {
	args []string
	ok   bool
}

var cache sync.Map // key -> result

// Args returns the source text of each argument of the call to a function
// named fn that covers site's line. It returns false when the source file
// cannot be read or parsed, when no such call exists, or when the call
// spreads a slice with "...". Call sites carry no column, so a line covered
// by more than one such call, nested or side by side, also returns false.
func Args(site Site, fn string) ([]string, bool) {
	k := key{path: site.Path, line: site.Line, name: fn}
	if v, ok := cache.Load(k); ok {
		r := v.(result)
		return r.args, r.ok
	}
	args, ok := parse(site.Path, site.Line, fn)
	cache.Store(k, result{args: args, ok: ok})
	return args, ok
}

// ArgsN is Args restricted to calls with exactly n arguments; otherwise it
// returns n copies of Unknown.
func ArgsN(site Site, fn string, n int) []string {
	if args, ok := Args(site, fn); ok && len(args) == n {
		return args
	}
	names := make([]string, n)
	for i := range names {
		names[i] = Unknown
	}
	return names
}

func parse(path string, line int, fn string) ([]string, bool) {
	if path == "" {
		return nil, false
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, false
	}

	var (
		found   *ast.CallExpr
		matches int
	)
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || funcName(call.Fun) != fn {
			return true
		}
		if fset.Position(call.Pos()).Line <= line && line <= fset.Position(call.End()).Line {
			found = call
			matches++
		}
		return true
	})
	if matches != 1 || found.Ellipsis.IsValid() {
		return nil, false
	}

	tf := fset.File(found.Pos())
	args := make([]string, len(found.Args))
	for i, arg := range found.Args {
		args[i] = string(src[tf.Offset(arg.Pos()):tf.Offset(arg.End())])
	}
	return args, true
}

func funcName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return funcName(e.X)
	case *ast.IndexListExpr:
		return funcName(e.X)
	case *ast.ParenExpr:
		return funcName(e.X)
	}
	return ""
}
