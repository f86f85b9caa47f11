package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	perr "aidetect/internal/platform/errors"
	"aidetect/internal/platform/logger"
	pnet "aidetect/internal/platform/net"
)

// AuthPort resolves the calling client from a request
type AuthPort interface {
	// Authenticate returns the client name or an error when the credentials are missing or wrong
	Authenticate(r *http.Request) (client string, err error)
}

// Auth passes through when p is nil, otherwise rejects unauthenticated requests
// and stores the client name on the context
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			client, err := p.Authenticate(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithClient(r.Context(), client)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyHeader is the header checked before Authorization
const APIKeyHeader = "X-API-Key"

// StaticKeys authenticates against a fixed set of name to key pairs
type StaticKeys struct {
	keys []namedKey
}

type namedKey struct {
	name string
	key  []byte
}

// NewStaticKeys builds a key set from name:key entries, entries without a name use "client-N"
// returns nil when no usable key is present so Auth stays a pass through
func NewStaticKeys(entries []string) *StaticKeys {
	var ks []namedKey
	for i, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		name, key, ok := strings.Cut(e, ":")
		if !ok {
			name, key = "", e
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = "client-" + strconv.Itoa(i+1)
		}
		ks = append(ks, namedKey{name: name, key: []byte(key)})
	}
	if len(ks) == 0 {
		return nil
	}
	return &StaticKeys{keys: ks}
}

// Authenticate implements AuthPort
func (s *StaticKeys) Authenticate(r *http.Request) (string, error) {
	presented := r.Header.Get(APIKeyHeader)
	if presented == "" {
		if v, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
			presented = strings.TrimSpace(v)
		}
	}
	if presented == "" {
		return "", perr.Unauthorizedf("missing api key")
	}
	p := []byte(presented)
	match := ""
	// compare against every key so timing does not reveal position
	for _, k := range s.keys {
		if subtle.ConstantTimeCompare(p, k.key) == 1 && match == "" {
			match = k.name
		}
	}
	if match == "" {
		return "", perr.Unauthorizedf("invalid api key")
	}
	return match, nil
}

// Len reports the number of configured keys
func (s *StaticKeys) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
