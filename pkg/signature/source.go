package signature

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrSourceNotFound is returned when the declaration of a method can not be located,
// for example in binaries built with -trimpath or without sources.
var ErrSourceNotFound = errors.New("method source not found")

const autogenerated = "<autogenerated>"

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
}

var (
	sources   = make(map[string]*sourceFile)
	sourcesMu sync.Mutex
)

// Of returns the textual signature of the method declared on t,
// in the form `Method(name Type, ...)`.
// The receiver is not part of the returned signature.
func Of(t reflect.Type, method string) (string, error) {
	if t == nil || t.Kind() == reflect.Interface {
		return "", errors.WithStack(ErrSourceNotFound)
	}
	m, ok := t.MethodByName(method)
	if !ok {
		return "", errors.Wrapf(ErrSourceNotFound, "method %s not found on %s", method, t)
	}

	file, err := declFile(m)
	if err == nil && file == autogenerated && t.Kind() == reflect.Pointer {
		// value receiver method promoted to the pointer method set
		if vm, ok := t.Elem().MethodByName(method); ok {
			file, err = declFile(vm)
		}
	}
	if err != nil {
		return "", err
	}
	if file == "" || file == autogenerated {
		return "", errors.Wrapf(ErrSourceNotFound, "%s.%s", t, method)
	}

	src, err := parseSource(file)
	if err != nil {
		return "", err
	}

	recv := t
	for recv.Kind() == reflect.Pointer {
		recv = recv.Elem()
	}
	recvName := recv.Name()
	// generic instantiations are named `Type[int]`
	if idx := strings.IndexByte(recvName, '['); idx > 0 {
		recvName = recvName[:idx]
	}

	for _, decl := range src.file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || fn.Name.Name != method || len(fn.Recv.List) == 0 {
			continue
		}
		if receiverName(fn.Recv.List[0].Type) != recvName {
			continue
		}
		return render(src.fset, fn), nil
	}

	return "", errors.Wrapf(ErrSourceNotFound, "%s.%s in %s", recvName, method, file)
}

func declFile(m reflect.Method) (string, error) {
	fn := runtime.FuncForPC(m.Func.Pointer())
	if fn == nil {
		return "", errors.Wrapf(ErrSourceNotFound, "no function info for %s", m.Name)
	}
	file, _ := fn.FileLine(fn.Entry())
	return file, nil
}

func parseSource(file string) (*sourceFile, error) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	if src, ok := sources[file]; ok {
		return src, nil
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceNotFound, "failed to parse %s: %s", file, err.Error())
	}
	src := &sourceFile{fset: fset, file: f}
	sources[file] = src
	return src, nil
}

func receiverName(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.StarExpr:
		return receiverName(v.X)
	case *ast.ParenExpr:
		return receiverName(v.X)
	case *ast.IndexExpr:
		return receiverName(v.X)
	case *ast.IndexListExpr:
		return receiverName(v.X)
	}
	return ""
}

func render(fset *token.FileSet, fn *ast.FuncDecl) string {
	var parts []string
	if fn.Type.Params != nil {
		for _, field := range fn.Type.Params.List {
			typ := exprString(fset, field.Type)
			if len(field.Names) == 0 {
				parts = append(parts, "_ "+typ)
				continue
			}
			for _, name := range field.Names {
				parts = append(parts, name.Name+" "+typ)
			}
		}
	}
	return fn.Name.Name + "(" + strings.Join(parts, ", ") + ")"
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var b bytes.Buffer
	_ = printer.Fprint(&b, fset, expr)
	return b.String()
}
