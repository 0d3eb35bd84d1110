// gen_models_registry writes models_registry.go for a models package. Every
// struct with a `gorm:"primaryKey"` ID field is registered for schema creation.
//
//	go run ../tools/gen_models_registry.go <models_dir>
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

const registryFile = "models_registry.go"

func main() {
	_ = godotenv.Load()

	var modelsDir string
	if len(os.Args) >= 2 {
		modelsDir = os.Args[1]
	} else {
		modelsDir = os.Getenv("GORM_MODELS_PATH")
		if modelsDir == "" {
			fmt.Println("Usage: go run gen_models_registry.go <models_dir> OR set GORM_MODELS_PATH environment variable")
			os.Exit(1)
		}
	}

	pkg, names, err := findModels(modelsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	src, err := render(pkg, names)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outputFile := filepath.Join(modelsDir, registryFile)
	if err := os.WriteFile(outputFile, src, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s with %d models.\n", outputFile, len(names))
}

// findModels returns the package name and the sorted names of its persisted structs.
func findModels(dir string) (string, []string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var pkg string
	var names []string
	fset := token.NewFileSet()
	for _, file := range files {
		name := file.Name()
		if file.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == registryFile {
			continue
		}
		node, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return "", nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pkg = node.Name.Name

		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if st, ok := typeSpec.Type.(*ast.StructType); ok && hasPrimaryKey(st) {
					names = append(names, typeSpec.Name.Name)
				}
			}
		}
	}
	if pkg == "" {
		return "", nil, fmt.Errorf("no Go files in %s", dir)
	}
	sort.Strings(names)
	return pkg, names, nil
}

func hasPrimaryKey(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if field.Tag == nil || len(field.Names) != 1 || field.Names[0].Name != "ID" {
			continue
		}
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		for _, opt := range strings.Split(tag.Get("gorm"), ";") {
			if strings.EqualFold(strings.TrimSpace(opt), "primaryKey") {
				return true
			}
		}
	}
	return false
}

func render(pkg string, names []string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by tools/gen_models_registry.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// ModelTypeRegistry lists every persisted model.\n")
	b.WriteString("var ModelTypeRegistry = []any{\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\t&%s{},\n", name)
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}
