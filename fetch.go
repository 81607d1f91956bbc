package layersmith

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

// fetchLayers retrieves every layer concurrently from the backend. Slot
// i of the result corresponds to params[i]; a layer the backend reports
// absent yields a nil slot and the request proceeds degraded. A genuine
// I/O error fails the whole batch (fail-fast join) - it must never be
// conflated with absence.
func fetchLayers(ctx context.Context, backend st.Backend, params []layer.Param, view layer.View) ([][]byte, error) {
	out := make([][]byte, len(params))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range params {
		g.Go(func() error {
			data, ok, err := backend.FetchLayer(gctx, p.Category, p.SKU.String(), view, "png")
			if err != nil {
				return fmt.Errorf("fetch layer %s: %w", p.Token(), err)
			}
			if ok {
				out[i] = data
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchBasePlate retrieves the view's base plate. Plates are stored as
// JPEG under the reserved "plate" category.
func fetchBasePlate(ctx context.Context, backend st.Backend, view layer.View) ([]byte, error) {
	data, ok, err := backend.FetchLayer(ctx, "plate", view.PlateValue(), view, "jpg")
	if err != nil {
		return nil, fmt.Errorf("fetch base plate for %s: %w", view, err)
	}
	if !ok {
		return nil, ErrPlateNotFound
	}
	return data, nil
}
