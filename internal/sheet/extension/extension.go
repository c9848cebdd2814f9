// Package extension loads author-supplied export tables from Lua scripts,
// so a sheet build can gain exports without recompiling the generator.
//
// A script must return a table mapping export names to strings:
//
//	return {
//	    covenant_block = "<div class=\"covenant\">...</div>",
//	}
package extension

import (
	"fmt"

	lua "github.com/Shopify/go-lua"

	"github.com/hermetic-games/sheetforge/internal/platform/errors"
	"github.com/hermetic-games/sheetforge/internal/sheet/exports"
)

// LoadFile runs the Lua script at path and wraps its returned table as a
// named provider.
func LoadFile(name, path string) (exports.Provider, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, errors.Wrap(errors.CodeExtensionLoad,
			fmt.Sprintf("load exports script %s", path), err)
	}
	return run(name, state)
}

// LoadString runs a Lua script from source and wraps its returned table
// as a named provider.
func LoadString(name, src string) (exports.Provider, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadString(state, src); err != nil {
		return nil, errors.Wrap(errors.CodeExtensionLoad, "load exports script", err)
	}
	return run(name, state)
}

func run(name string, state *lua.State) (exports.Provider, error) {
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, errors.Wrap(errors.CodeExtensionLoad, "run exports script", err)
	}

	if state.TypeOf(-1) != lua.TypeTable {
		return nil, errors.New(errors.CodeExtensionInvalidType,
			"exports script must return a table")
	}

	table := exports.Table{}
	state.PushNil()
	for state.Next(-2) {
		if state.TypeOf(-2) != lua.TypeString {
			return nil, errors.New(errors.CodeExtensionInvalidType,
				"exports table keys must be strings")
		}
		if state.TypeOf(-1) != lua.TypeString {
			key, _ := state.ToString(-2)
			return nil, errors.WithMetadata(errors.CodeExtensionInvalidType,
				fmt.Sprintf("export %q must be a string", key),
				map[string]string{"key": key})
		}
		key, _ := state.ToString(-2)
		value, _ := state.ToString(-1)
		if key == "" {
			return nil, errors.New(errors.CodeExportEmptyKey, "exports table has empty key")
		}
		table[key] = value
		state.Pop(1)
	}
	state.Pop(1)

	return exports.NewProvider(name, table), nil
}
