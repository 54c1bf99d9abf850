package offheap

import (
	"errors"
	"testing"

	"github.com/kolobok-kelbek/slotcache/lru"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{
			name:   "single element",
			length: 1,
		},
		{
			name:   "several pages",
			length: 100_000,
		},
		{
			name:    "zero length",
			length:  0,
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative length",
			length:  -1,
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New[uint64](tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			defer a.Close()

			if a.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", a.Len(), tt.length)
			}
			for _, i := range []int{0, tt.length / 2, tt.length - 1} {
				if a.Get(i) != 0 {
					t.Errorf("Get(%d) = %d on fresh array, want 0", i, a.Get(i))
				}
			}
		})
	}
}

func TestArray_SetGet(t *testing.T) {
	a, err := New[float32](1024)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	for i := 0; i < a.Len(); i++ {
		a.Set(i, float32(i)/2)
	}
	for i := 0; i < a.Len(); i++ {
		if got, want := a.Get(i), float32(i)/2; got != want {
			t.Fatalf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestArray_CloseIsIdempotent(t *testing.T) {
	a, err := New[int32](16)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", a.Len())
	}
}

func TestFactory_BacksCache(t *testing.T) {
	cache, err := lru.NewCacheWithStorage(300, Factory[uint32](), Factory[float64]())
	if err != nil {
		t.Fatalf("NewCacheWithStorage() error = %v", err)
	}
	if cache.PointerWidth() != 16 {
		t.Errorf("PointerWidth() = %d, want 16", cache.PointerWidth())
	}

	for i := uint32(0); i < 1000; i++ {
		cache.Set(i, float64(i)*1.5)
	}
	if cache.Len() != 300 {
		t.Errorf("Len() = %d, want 300", cache.Len())
	}
	if cache.Has(699) {
		t.Error("key 699 should have been evicted")
	}
	if v, ok := cache.Get(700); !ok || v != 1050 {
		t.Errorf("Get(700) = %v, %v, want 1050, true", v, ok)
	}
	if v, ok := cache.Peek(999); !ok || v != 1498.5 {
		t.Errorf("Peek(999) = %v, %v, want 1498.5, true", v, ok)
	}

	if err := cache.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

type slot uint16

func TestNew_NamedType(t *testing.T) {
	a, err := New[slot](4)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	a.Set(3, slot(7))
	if a.Get(3) != 7 {
		t.Errorf("Get(3) = %d, want 7", a.Get(3))
	}
}
