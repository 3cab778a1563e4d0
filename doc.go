// Package oasgen turns OpenAPI/JSON-Schema documents into target-language
// type descriptors and generated Go source.
//
// The heart of the module is the schema resolution and composition engine:
//
//   - schema holds the parsed schema graph, an immutable arena of nodes
//     addressed by #/... pointer paths.
//   - resolver resolves $ref pointers (including cyclic ones), merges allOf
//     chains, and maps any schema node to a ResolvedType descriptor with its
//     import set.
//   - compose implements oneOf/anyOf semantics: nullable-union collapsing,
//     explicit and inferred discriminators, and discriminated-union code
//     synthesis.
//   - generator walks the named schemas of a document and emits a formatted
//     Go types file.
//   - loader parses YAML or JSON documents into a schema graph.
//   - union is the small runtime the generated union code calls for tag
//     probing and strict per-branch decoding.
//
// A single bad reference never aborts a run: unresolvable pointers degrade to
// a conservative untyped result and are reported as issues alongside the
// generated output.
package oasgen
