/*
File    : vanction/builtin/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"os"
	"path/filepath"

	"github.com/akashmaji946/vanction/object"
)

// registerFile wires the File.* surface plus the supplemented
// filesystem helpers (file_exists, mkdir, list_dir, pwd) that
// SPEC_FULL.md adds beyond the core File.read/write/exists/delete set.
func registerFile(add adder) {
	add("File.read", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("File.read", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("File.read", "string path", args[0])
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "File.read: %s", err)
		}
		return &object.String{Value: string(data)}, nil
	})

	add("File.write", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("File.write", 2, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("File.write", "string path", args[0])
		}
		content, ok := asString(args[1])
		if !ok {
			return nil, typeErr("File.write", "string content", args[1])
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "File.write: %s", err)
		}
		return &object.Null{}, nil
	})

	add("File.exists", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("File.exists", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("File.exists", "string path", args[0])
		}
		_, err := os.Stat(path)
		return &object.Bool{Value: err == nil}, nil
	})

	add("File.delete", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("File.delete", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("File.delete", "string path", args[0])
		}
		if err := os.Remove(path); err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "File.delete: %s", err)
		}
		return &object.Null{}, nil
	})

	add("file_exists", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("file_exists", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("file_exists", "string path", args[0])
		}
		_, err := os.Stat(path)
		return &object.Bool{Value: err == nil}, nil
	})

	add("mkdir", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("mkdir", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("mkdir", "string path", args[0])
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "mkdir: %s", err)
		}
		return &object.Null{}, nil
	})

	add("list_dir", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("list_dir", 1, len(args))
		}
		path, ok := asString(args[0])
		if !ok {
			return nil, typeErr("list_dir", "string path", args[0])
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "list_dir: %s", err)
		}
		out := make([]object.Value, len(entries))
		for i, e := range entries {
			out[i] = &object.String{Value: e.Name()}
		}
		return &object.Array{Elements: out}, nil
	})

	add("pwd", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 0 {
			return nil, argCountErr("pwd", 0, len(args))
		}
		wd, err := os.Getwd()
		if err != nil {
			return nil, object.NewError(object.IOErrorKind, "", 0, 0, "pwd: %s", err)
		}
		return &object.String{Value: filepath.ToSlash(wd)}, nil
	})
}
