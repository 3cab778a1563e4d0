package resolver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/oasgen/oasgen/schema"
)

// Field is one named field with its required flag, the unit the structural
// signature is computed from.
type Field struct {
	Name     string
	Required bool
}

// Signature computes a canonical, order-independent key from a field list.
// Two lists that are permutations of each other (same name:required pairs)
// produce the same signature, which makes it safe as a cache and structural
// equality key for header/parameter consolidation.
func Signature(fields []Field) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, f.Name+":"+strconv.FormatBool(f.Required))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

// SignatureOf computes the structural signature of an object schema from its
// property names and required set. Non-object nodes yield an empty signature.
func SignatureOf(s *schema.Schema) string {
	if s == nil || len(s.Properties) == 0 {
		return ""
	}
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}
	fields := make([]Field, 0, len(s.Properties))
	for name := range s.Properties {
		fields = append(fields, Field{Name: name, Required: required[name]})
	}
	return Signature(fields)
}

// cache memoizes resolution results per run. It is owned by one Resolver
// instance and is not safe for concurrent mutation; hosts that parallelize
// resolution must guard it or shard by signature.
type cache struct {
	types map[string]ResolvedType
}

func newCache() *cache {
	return &cache{types: make(map[string]ResolvedType)}
}

func (c *cache) get(key string) (ResolvedType, bool) {
	rt, ok := c.types[key]
	return rt, ok
}

func (c *cache) put(key string, rt ResolvedType) {
	c.types[key] = rt
}

// clear resets the cache between independent runs.
func (c *cache) clear() {
	clear(c.types)
}
