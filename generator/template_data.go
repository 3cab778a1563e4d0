package generator

// modelData is the payload for model.go.tmpl.
type modelData struct {
	Package     string
	Name        string
	Description string
	Fields      []fieldData
}

// fieldData is one struct field in a generated model.
type fieldData struct {
	Name        string
	Type        string
	Tag         string
	Description string
}

// enumData is the payload for enum.go.tmpl.
type enumData struct {
	Package     string
	Name        string
	Description string
	Members     []enumMemberData
}

// enumMemberData is one constant of a generated enum type.
type enumMemberData struct {
	Name  string
	Value string
}

// aliasData is the payload for alias.go.tmpl.
type aliasData struct {
	Package     string
	Name        string
	Target      string
	Description string
}
