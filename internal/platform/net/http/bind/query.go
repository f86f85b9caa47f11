package bind

import (
	"net/http"
	"reflect"
	"strconv"

	perr "aidetect/internal/platform/errors"
)

// ParseQuery fills a copy of def from the url query using `query` struct tags, then validates it
// absent params keep the value from def; supported kinds are string, bool and ints
func ParseQuery[T any](r *http.Request, def T) (T, error) {
	var zero T
	dst := def
	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return zero, perr.InvalidArgf("query target must be a struct")
	}
	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Tag.Get("query")
		if name == "" || !q.Has(name) {
			continue
		}
		raw := q.Get(name)
		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a boolean", name), name)
			}
			fv.SetBool(b)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || fv.OverflowInt(n) {
				return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name), name)
			}
			fv.SetInt(n)
		default:
			return zero, perr.InvalidArgf("unsupported query field kind %s", fv.Kind())
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}
