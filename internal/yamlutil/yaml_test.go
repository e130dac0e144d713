package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-uwptiles/internal/yamlutil"
)

type tileConfig struct {
	Name    string    `yaml:"name"`
	Width   int       `yaml:"width"`
	Scales  []float64 `yaml:"scales"`
	Enabled *bool     `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict YAML decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid YAML", func(t *testing.T) {
		t.Parallel()

		var got tileConfig
		data := []byte("name: SmallTile\nwidth: 71\nscales: [1, 1.25]\nenabled: false\n")
		if err := yamlutil.UnmarshalStrict(data, &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "SmallTile" || got.Width != 71 {
			t.Errorf("got %+v", got)
		}
		if len(got.Scales) != 2 || got.Scales[1] != 1.25 {
			t.Errorf("Scales = %v, want [1 1.25]", got.Scales)
		}
		if got.Enabled == nil || *got.Enabled {
			t.Errorf("Enabled = %v, want pointer to false", got.Enabled)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		var got tileConfig
		err := yamlutil.UnmarshalStrict([]byte("name: x\nheight: 3\n"), &got)
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
		if !strings.Contains(err.Error(), "yamlutil") {
			t.Errorf("error should be prefixed, got %v", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var got tileConfig
		if err := yamlutil.UnmarshalStrict(nil, &got); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := yamlutil.UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		t.Parallel()

		data := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
		var got tileConfig
		if err := yamlutil.UnmarshalStrict(data, &got); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}
