// Package manglebars provides a minimal logic-less template engine.
//
// Templates mix literal markup with bindings and block operators:
//
//	Hello, {{name}}!
//	{{#each items}}[{{title}}]{{/each}}
//	{{#if admin}}Admin panel{{/if}}
//
// # Basic Usage
//
// Compile a template once and render it with different data:
//
//	engine := manglebars.MustNew()
//	tmpl, err := engine.Compile("Hi {{name}}!")
//	result, err := tmpl.Render(ctx, map[string]any{"name": "Ada"})
//	// result: "Hi Ada!"
//
// A binding whose key is absent from the data renders as the empty string.
// Bindings are plain property lookups: there are no dotted paths, filters or
// expressions, and output is never escaped.
//
// # Block Operators
//
// A block {{#name arg1 arg2}}body{{/name}} looks up each argument in the data,
// then hands the values, the raw body and the enclosing data to the helper
// registered as name. Two helpers are built in:
//
// each - renders the body once per element of a sequence of maps, with the
// element as the whole context:
//
//	{{#each items}}[{{x}}]{{/each}}
//
// if - renders the body against the enclosing context when the argument is truthy:
//
//	{{#if flag}}Y{{/if}}
//
// By default the first {{/name}} after the header closes a block, so a block
// cannot contain another block with the same name. WithNestingAware(true)
// switches to depth-counted matching.
//
// # Custom Helpers
//
// Register helpers on the engine's registry before rendering templates that use them:
//
//	engine.MustRegisterHelper("upper", func(ctx context.Context, call *manglebars.Call) (string, error) {
//	    out, err := call.RenderBody(ctx, call.Data)
//	    return strings.ToUpper(out), err
//	})
//
// Registering an existing name replaces the previous helper, built-ins included.
//
// # Error Handling
//
// Errors are *cuserr.CustomError values carrying the kind, line, column and
// operator name as metadata. Use KindOf, IsSyntaxError, IsLookupError and
// IsTypeError to branch on them. Compile reports syntax errors in the top-level
// template only; bodies are compiled when they render. Validate checks the
// whole tree ahead of time.
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := manglebars.New(
//	    manglebars.WithMaxDepth(50),
//	    manglebars.WithBodyCache(256),
//	    manglebars.WithLogger(logger),
//	)
package manglebars
