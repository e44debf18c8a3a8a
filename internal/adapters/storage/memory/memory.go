// Package memory implementa los repositorios sobre mapas en proceso.
// Todo el estado es efímero: arranca desde los seeds y muere con el proceso.
package memory

import "errors"

var ErrNotFound = errors.New("not found")
