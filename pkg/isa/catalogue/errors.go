package catalogue

import "errors"

var ErrInvalidCatalogue = errors.New("invalid catalogue")
