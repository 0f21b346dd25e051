package artwork

import "errors"

var ErrArtworkNotFound = errors.New("artwork not found")
