package omdb

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

const (
	minPage = 1
	maxPage = 100
)

// param is a single query parameter. Parameter lists keep insertion order.
type param struct {
	key   string
	value string
}

type params []param

// add appends key=value unless value is empty.
func (p params) add(key, value string) params {
	if value == "" {
		return p
	}
	return append(p, param{key: key, value: value})
}

// addInt appends key=*value unless value is nil.
func (p params) addInt(key string, value *int) params {
	if value == nil {
		return p
	}
	return append(p, param{key: key, value: strconv.Itoa(*value)})
}

// Get returns the value of key, or "" if it is not present.
func (p params) Get(key string) string {
	for _, kv := range p {
		if kv.key == key {
			return kv.value
		}
	}
	return ""
}

// Encode renders the parameters as a query string in insertion order.
func (p params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

func searchParams(apiKey, query string, opts SearchOptions) params {
	return params{}.
		add("apikey", apiKey).
		add("s", query).
		add("type", string(opts.Type)).
		addInt("y", opts.Year).
		addInt("page", opts.Page)
}

func titleParams(apiKey, title string, opts TitleOptions) params {
	return params{}.
		add("t", title).
		add("apikey", apiKey).
		add("type", string(opts.Type)).
		addInt("y", opts.Year).
		add("plot", string(opts.Plot))
}

func idParams(apiKey, id string, opts IDOptions) params {
	return params{}.
		add("i", id).
		add("apikey", apiKey).
		add("plot", string(opts.Plot))
}

func posterParams(apiKey, id string) params {
	return params{}.
		add("i", id).
		add("apikey", apiKey)
}

// ValidateSearch checks search arguments without sending a request.
func ValidateSearch(query string, opts SearchOptions) error {
	if strings.TrimSpace(query) == "" {
		return validationError(opSearch, "missing query")
	}
	if opts.Page != nil && (*opts.Page < minPage || *opts.Page > maxPage) {
		return validationError(opSearch, "page out of range")
	}
	if opts.Type != "" && !opts.Type.Valid() {
		return validationError(opSearch, "invalid type")
	}
	return nil
}

// ValidateTitle checks title lookup arguments without sending a request.
func ValidateTitle(title string, opts TitleOptions) error {
	if strings.TrimSpace(title) == "" {
		return validationError(opGetByTitle, "missing title")
	}
	if opts.Plot != "" && !opts.Plot.Valid() {
		return validationError(opGetByTitle, "invalid plot")
	}
	if opts.Type != "" && !opts.Type.Valid() {
		return validationError(opGetByTitle, "invalid type")
	}
	return nil
}

// ValidateIDOptions checks the options of an ID lookup.
func ValidateIDOptions(opts IDOptions) error {
	if opts.Plot != "" && !opts.Plot.Valid() {
		return validationError(opGetByID, "invalid plot")
	}
	return nil
}

// resolveID extracts the IMDb ID from a bare string, an Identifiable or a
// struct with an exported string field named ID.
func resolveID(op string, ref any) (string, error) {
	var id string
	switch v := ref.(type) {
	case string:
		id = v
	case Identifiable:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			break
		}
		id = v.GetID()
	default:
		id = idField(ref)
	}
	if strings.TrimSpace(id) == "" {
		return "", validationError(op, "missing ID")
	}
	return id, nil
}

// ResolveID returns the IMDb ID carried by ref, a bare string or an
// Identifiable, or a validation error when there is none.
func ResolveID(ref any) (string, error) {
	return resolveID("resolveId", ref)
}

// idField reads an exported string field named ID from a struct or a
// non-nil pointer to one.
func idField(ref any) string {
	rv := reflect.ValueOf(ref)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}
	f, ok := rv.Type().FieldByName("ID")
	if !ok || !f.IsExported() || f.Type.Kind() != reflect.String {
		return ""
	}
	return rv.FieldByIndex(f.Index).String()
}
