package layersmith

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/layersmith/layer"
)

func TestFetchLayersPreservesOrder(t *testing.T) {
	ctx := context.Background()
	bk := newFakeBackend()
	bk.addLayer(layer.ViewFront, "pants", "cargo-black", "png", []byte("pants-png"))
	bk.addLayer(layer.ViewFront, "hoodies", "hoodie-black", "png", []byte("hoodie-png"))

	params := []layer.Param{
		layer.NewParam("pants", "cargo-black"),
		layer.NewParam("hoodies", "hoodie-black"),
	}

	slots, err := fetchLayers(ctx, bk, params, layer.ViewFront)
	if err != nil {
		t.Fatalf("fetchLayers: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if string(slots[0]) != "pants-png" || string(slots[1]) != "hoodie-png" {
		t.Fatalf("slot order does not match param order: %q %q", slots[0], slots[1])
	}
}

func TestFetchLayersMissingSlotIsNil(t *testing.T) {
	ctx := context.Background()
	bk := newFakeBackend()
	bk.addLayer(layer.ViewFront, "hoodies", "hoodie-black", "png", []byte("hoodie-png"))

	params := []layer.Param{
		layer.NewParam("pants", "nonexistent"),
		layer.NewParam("hoodies", "hoodie-black"),
	}

	slots, err := fetchLayers(ctx, bk, params, layer.ViewFront)
	if err != nil {
		t.Fatalf("absence must not fail the batch: %v", err)
	}
	if slots[0] != nil {
		t.Fatalf("missing layer should leave a nil slot, got %q", slots[0])
	}
	if string(slots[1]) != "hoodie-png" {
		t.Fatalf("found layer lost: %q", slots[1])
	}
}

func TestFetchLayersIOErrorFailsBatch(t *testing.T) {
	ctx := context.Background()
	bk := newFakeBackend()
	bk.layerErr = errors.New("backend down")

	params := []layer.Param{layer.NewParam("pants", "cargo-black")}
	if _, err := fetchLayers(ctx, bk, params, layer.ViewFront); err == nil {
		t.Fatal("genuine I/O error must fail the whole fetch")
	}
}

func TestFetchBasePlate(t *testing.T) {
	ctx := context.Background()
	bk := newFakeBackend()
	bk.addLayer(layer.ViewFront, "plate", "swatthermals-black", "jpg", []byte("plate-jpg"))

	data, err := fetchBasePlate(ctx, bk, layer.ViewFront)
	if err != nil || string(data) != "plate-jpg" {
		t.Fatalf("fetchBasePlate: %q %v", data, err)
	}

	if _, err := fetchBasePlate(ctx, bk, layer.ViewBack); !errors.Is(err, ErrPlateNotFound) {
		t.Fatalf("expected ErrPlateNotFound, got %v", err)
	}
}
