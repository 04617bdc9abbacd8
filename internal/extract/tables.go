package extract

import "github.com/Tesfalegnp/Auto-Document-Generation/internal/language"

// nodeRole tags the node kinds the extractor reacts to. Everything else is
// roleOther and only recursed through.
type nodeRole int

const (
	roleOther nodeRole = iota
	roleClass
	roleFunction
	roleVariable
)

// langTable describes one language for the generic traversal: which node kinds
// play which role, and which field carries a variable declarator's name (""
// means the declarator's first child).
type langTable struct {
	roles    map[string]nodeRole
	varField map[string]string
}

var langTables = map[language.Language]langTable{
	language.LangPython: {
		roles: map[string]nodeRole{
			"class_definition":    roleClass,
			"function_definition": roleFunction,
			"assignment":          roleVariable,
		},
		varField: map[string]string{
			"assignment": "", // left-hand side is the first child
		},
	},
	language.LangTypeScript: {
		roles: map[string]nodeRole{
			"class_declaration":    roleClass,
			"function_declaration": roleFunction,
			"method_definition":    roleFunction,
			"variable_declarator":  roleVariable,
		},
		varField: map[string]string{
			"variable_declarator": "name",
		},
	},
	language.LangGo: {
		roles: map[string]nodeRole{
			"type_spec":             roleClass,
			"function_declaration":  roleFunction,
			"method_declaration":    roleFunction,
			"short_var_declaration": roleVariable,
			"var_spec":              roleVariable,
		},
		varField: map[string]string{
			"short_var_declaration": "left",
			"var_spec":              "name",
		},
	},
	language.LangRust: {
		roles: map[string]nodeRole{
			"struct_item":     roleClass,
			"function_item":   roleFunction,
			"let_declaration": roleVariable,
		},
		varField: map[string]string{
			"let_declaration": "pattern",
		},
	},
}

// tableFor returns the traversal table for a language.
func tableFor(lang language.Language) (langTable, bool) {
	table, ok := langTables[lang]
	return table, ok
}
