package schema

// Types returns the type(s) declared on a node, handling both the string
// form (OAS 2.0/3.0) and the array form (OAS 3.1+).
//
// Examples:
//   - OAS 3.0: {"type": "string"} returns ["string"]
//   - OAS 3.1: {"type": ["string", "null"]} returns ["string", "null"]
func (s *Schema) Types() []string {
	if s == nil {
		return nil
	}
	switch t := s.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if str, ok := v.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// PrimaryType returns the first non-null type declared on a node, inferring
// object/array/string from structural fields when no explicit type is set.
// Returns an empty string when nothing can be determined.
func (s *Schema) PrimaryType() string {
	if s == nil {
		return ""
	}
	types := s.Types()
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}

	// Infer from structure when no explicit type is set
	if s.Properties != nil {
		return "object"
	}
	if s.Items != nil {
		return "array"
	}
	if len(s.Enum) > 0 {
		return "string"
	}
	return ""
}

// IsNullDeclared reports whether "null" appears in the node's type list
// (the OAS 3.1+ nullable encoding).
func (s *Schema) IsNullDeclared() bool {
	for _, t := range s.Types() {
		if t == "null" {
			return true
		}
	}
	return false
}

// IsNullOnly reports whether the node denotes exactly the null type, the
// branch shape that marks a nullable-union pattern. Both {"type": "null"}
// and the bare empty-with-nullable form count.
func (s *Schema) IsNullOnly() bool {
	if s == nil {
		return false
	}
	types := s.Types()
	if len(types) == 1 && types[0] == "null" {
		return true
	}
	// An empty schema with only nullable:true set is the OAS 3.0 spelling.
	return len(types) == 0 && s.Nullable && s.Ref == "" &&
		s.Properties == nil && s.Items == nil && len(s.Enum) == 0 &&
		len(s.AllOf) == 0 && len(s.OneOf) == 0 && len(s.AnyOf) == 0
}

// HasType reports whether the node's type list includes targetType.
func (s *Schema) HasType(targetType string) bool {
	for _, t := range s.Types() {
		if t == targetType {
			return true
		}
	}
	return false
}
