package domain

// Row is one spreadsheet line keyed by normalized header name. Key order is
// preserved so that lazily created form questions appear in column order.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow creates an empty Row.
func NewRow() *Row {
	return &Row{
		values: make(map[string]string),
	}
}

// Set stores a value under key, keeping first-seen key order.
func (r *Row) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key, or "" when absent.
func (r *Row) Get(key string) string {
	return r.values[key]
}

// GetOr returns the value for key, or fallback when the value is empty.
func (r *Row) GetOr(key, fallback string) string {
	if v := r.values[key]; v != "" {
		return v
	}
	return fallback
}

// Has reports whether key holds a non-empty value.
func (r *Row) Has(key string) bool {
	return r.values[key] != ""
}

// Keys returns the keys in insertion order.
func (r *Row) Keys() []string {
	return r.keys
}

// Len returns the number of keys.
func (r *Row) Len() int {
	return len(r.keys)
}
