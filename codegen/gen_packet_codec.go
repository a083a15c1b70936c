//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"
	"unicode"
)

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "PlayerID")
	FieldType string // The wire type (e.g., "U16", "Pos24", "ArrayLarge")
	Context   string // Name pushed onto error paths (e.g., "id")
	WriteFn   string
	ReadFn    string
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool

	// Elem structs get free WriteX/ReadX functions so they can be array elements.
	Elem bool

	Registered bool
	PacketID   string
}

type Variant struct {
	Const string
	Name  string
}

// Enum represents a named integer type marked with @enum
type Enum struct {
	Name     string
	Bits     int
	Catchall string
	Variants []Variant
}

func (e Enum) Var() string {
	return strings.ToLower(e.Name[:1]) + e.Name[1:] + "Enum"
}

type File struct {
	Name    string
	Structs []GeneratedStruct
	Enums   []Enum
}

func (f File) HasRegistry() bool {
	for _, s := range f.Structs {
		if s.Registered {
			return true
		}
	}
	return false
}

// snakeCase turns a Go field name into the wire name used in error paths:
// EnergyRegen -> energy_regen, ID -> id.
func snakeCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := !unicode.IsUpper(rs[i-1])
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func typeName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// parseMarker returns the options of an @gen or @enum marker in doc.
func parseMarker(doc *ast.CommentGroup, marker string) (opts []string, found bool) {
	if doc == nil {
		return nil, false
	}
	for _, comment := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(comment.Text, "//"))
		if !strings.HasPrefix(text, marker) {
			continue
		}
		rest := strings.TrimPrefix(text, marker)
		if rest == "" {
			return nil, true
		}
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		for _, opt := range strings.Split(rest[1:], ",") {
			opts = append(opts, strings.TrimSpace(opt))
		}
		return opts, true
	}
	return nil, false
}

func main() {
	registryName := flag.String("registry", "", "name of the packet registry (e.g. ServerPacket)")
	runtimePath := flag.String("runtime", "github.com/gstoney/airmash/packet", "import path of the codec runtime")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: go run gen_packet_codec.go [-registry Name] -- path/to/dir")
		os.Exit(1)
	}

	targetDir := flag.Arg(flag.NArg() - 1) // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		// Skip generated files and tests
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		// Pre-scan for ID() methods to map StructName -> ID
		structIDs := make(map[string]string)
		for _, decl := range node.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			// Look for func (Receiver) ID() uint8 { return X }
			if !ok || fn.Name.Name != "ID" || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			recvName := typeName(fn.Recv.List[0].Type)
			if recvName == "" || fn.Body == nil {
				continue
			}

			for _, stmt := range fn.Body.List {
				if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) > 0 {
					if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
						structIDs[recvName] = lit.Value
					}
				}
			}
		}

		var fileStructs []GeneratedStruct
		var fileEnums []Enum
		enumIndex := make(map[string]int)

		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			// Enum variants: typed constants of an @enum type declared earlier in the file
			if gen.Tok == token.CONST {
				for _, spec := range gen.Specs {
					vspec, ok := spec.(*ast.ValueSpec)
					if !ok || vspec.Type == nil {
						continue
					}
					i, ok := enumIndex[typeName(vspec.Type)]
					if !ok {
						continue
					}
					e := &fileEnums[i]
					for _, name := range vspec.Names {
						e.Variants = append(e.Variants, Variant{
							Const: name.Name,
							Name:  strings.TrimPrefix(name.Name, e.Name),
						})
					}
				}
				continue
			}

			if gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			if opts, isEnum := parseMarker(gen.Doc, "@enum"); isEnum {
				for _, spec := range gen.Specs {
					tspec := spec.(*ast.TypeSpec)
					bits := map[string]int{"uint8": 8, "uint16": 16, "uint32": 32}[typeName(tspec.Type)]
					if bits == 0 {
						panic("@enum " + tspec.Name.Name + " must have an unsigned integer underlying type")
					}
					e := Enum{Name: tspec.Name.Name, Bits: bits}
					for _, opt := range opts {
						if v, ok := strings.CutPrefix(opt, "catchall="); ok {
							e.Catchall = e.Name + v
						}
					}
					enumIndex[e.Name] = len(fileEnums)
					fileEnums = append(fileEnums, e)
				}
				continue
			}

			opts, isGen := parseMarker(gen.Doc, "@gen")
			if !isGen {
				continue
			}

			var genRead, genWrite, elem, reg bool
			for _, opt := range opts {
				switch opt {
				case "r":
					genRead = true
				case "w":
					genWrite = true
				case "elem":
					elem = true
				case "reg":
					reg = true
				}
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					for _, name := range field.Names {
						rawTag := ""
						if field.Tag != nil {
							rawTag = strings.Trim(field.Tag.Value, "`")
						}

						parsedTag := reflect.StructTag(rawTag)
						fieldType := parsedTag.Get("field")
						if fieldType == "" {
							continue // Skip fields without the "field" tag
						}

						f := Field{
							Name:      name.Name,
							FieldType: fieldType,
							Context:   parsedTag.Get("name"),
						}
						if f.Context == "" {
							f.Context = snakeCase(name.Name)
						}
						if inner := parsedTag.Get("inner"); inner != "" {
							f.WriteFn = "Write" + inner
							f.ReadFn = "Read" + inner
						}

						fields = append(fields, f)
					}
				}

				fileStructs = append(fileStructs, GeneratedStruct{
					Name:       tspec.Name.Name,
					Fields:     fields,
					GenRead:    genRead,
					GenWrite:   genWrite,
					Elem:       elem,
					Registered: reg,
					PacketID:   structIDs[tspec.Name.Name],
				})
			}
		}

		if len(fileStructs) > 0 || len(fileEnums) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:    filepath.Base(filePath),
				Structs: fileStructs,
				Enums:   fileEnums,
			})
		}
	}

	// Element codecs of this package are called directly, everything else
	// lives in the runtime package.
	runtime := ""
	if pkgName != filepath.Base(*runtimePath) {
		runtime = filepath.Base(*runtimePath) + "."
	}
	local := make(map[string]bool)
	for _, f := range parsedFiles {
		for _, s := range f.Structs {
			if s.Elem {
				local["Write"+s.Name] = true
				local["Read"+s.Name] = true
			}
		}
	}
	for fi := range parsedFiles {
		for si := range parsedFiles[fi].Structs {
			fields := parsedFiles[fi].Structs[si].Fields
			for i := range fields {
				if fields[i].WriteFn != "" && !local[fields[i].WriteFn] {
					fields[i].WriteFn = runtime + fields[i].WriteFn
					fields[i].ReadFn = runtime + fields[i].ReadFn
				}
			}
		}
	}

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}
{{if .Runtime}}
import "{{.RuntimePath}}"
{{end}}
{{- if .RegistryName}}
var Registry = {{.Runtime}}NewRegistry("{{.RegistryName}}", map[uint8]func() {{.Runtime}}Packet{
{{- range .Files}}{{range .Structs}}{{if .Registered}}
	{{.PacketID}}: func() {{$.Runtime}}Packet { return &{{.Name}}{} },
{{- end}}{{end}}{{end}}
})
{{end}}
{{- range .Files}}
// Source: {{.Name}}
{{range .Enums}}
{{- $enum := .Name}}
var {{.Var}} = newEnum[{{.Name}}]("{{.Name}}", {{.Bits}},
{{- range .Variants}}
	enumVariant[{{$enum}}]{ {{- .Const}}, "{{.Name}}"},
{{- end}}
){{if .Catchall}}.withCatchall({{.Catchall}}){{end}}

func (v {{.Name}}) String() string {
	return {{.Var}}.format(v)
}

// Known reports whether v is a declared variant.
func (v {{.Name}}) Known() bool {
	return {{.Var}}.known(v)
}

func (v {{.Name}}) MarshalText() ([]byte, error) {
	return {{.Var}}.marshalText(v)
}

func (v *{{.Name}}) UnmarshalText(b []byte) error {
	x, err := {{.Var}}.parse(string(b))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (v *{{.Name}}) UnmarshalJSON(b []byte) error {
	x, err := {{.Var}}.unmarshalJSON(b)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func Write{{.Name}}(w *Writer, v {{.Name}}) error {
	return {{.Var}}.write(w, v)
}

func Read{{.Name}}(r *Reader) ({{.Name}}, error) {
	return {{.Var}}.read(r)
}
{{end}}
{{- range .Structs}}
{{- if .GenWrite}}
func (p {{.Name}}) EncodeFields(w *{{$.Runtime}}Writer) (err error) {
{{- range .Fields}}
	{{- if .WriteFn}}
	if err = {{$.Runtime}}Write{{.FieldType}}(w, p.{{.Name}}, {{.WriteFn}}); err != nil {
	{{- else}}
	if err = {{$.Runtime}}Write{{.FieldType}}(w, p.{{.Name}}); err != nil {
	{{- end}}
		return {{$.Runtime}}WithContext(err, "{{.Context}}")
	}
{{- end}}
	return
}
{{end}}
{{- if .GenRead}}
func (p *{{.Name}}) DecodeFields(r *{{$.Runtime}}Reader) (err error) {
{{- range .Fields}}
	{{- if .ReadFn}}
	if p.{{.Name}}, err = {{$.Runtime}}Read{{.FieldType}}(r, {{.ReadFn}}); err != nil {
	{{- else}}
	if p.{{.Name}}, err = {{$.Runtime}}Read{{.FieldType}}(r); err != nil {
	{{- end}}
		return {{$.Runtime}}WithContext(err, "{{.Context}}")
	}
{{- end}}
	return
}
{{end}}
{{- if .Elem}}
func Write{{.Name}}(w *{{$.Runtime}}Writer, v {{.Name}}) error {
	return v.EncodeFields(w)
}

func Read{{.Name}}(r *{{$.Runtime}}Reader) (v {{.Name}}, err error) {
	err = v.DecodeFields(r)
	return
}
{{end}}
{{- end}}
{{- end}}`

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName      string
		Runtime      string
		RuntimePath  string
		RegistryName string
		Files        []File
	}{
		PkgName:      pkgName,
		Runtime:      runtime,
		RuntimePath:  *runtimePath,
		RegistryName: *registryName,
		Files:        parsedFiles,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(fmt.Errorf("format generated code: %w\n%s", err, buf.Bytes()))
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}
