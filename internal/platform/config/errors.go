package config

import "errors"

var errNotAbsolute = errors.New("want an absolute http(s) URL")
