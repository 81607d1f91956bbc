package layersmith

import "errors"

// ErrPlateNotFound reports that the base plate image for the requested
// view is absent in the backend. Unlike a missing garment layer, a
// missing plate is fatal: there is nothing to composite onto.
var ErrPlateNotFound = errors.New("layersmith: base plate not found")
