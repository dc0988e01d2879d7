package jsontag

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/minio/simdjson-go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtkit/errs"
	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/tag"
)

func TestEncode_IntegerBoundaries(t *testing.T) {
	tests := []struct {
		in   int64
		want tag.Tag
	}{
		{0, tag.Byte(0)},
		{127, tag.Byte(127)},
		{-128, tag.Byte(-128)},
		{128, tag.Short(128)},
		{-129, tag.Short(-129)},
		{32767, tag.Short(32767)},
		{32768, tag.Int(32768)},
		{-32769, tag.Int(-32769)},
		{2147483647, tag.Int(2147483647)},
		{2147483648, tag.Long(2147483648)},
		{-2147483649, tag.Long(-2147483649)},
		{math.MaxInt64, tag.Long(math.MaxInt64)},
	}

	for _, tt := range tests {
		got, err := Encode(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %d", tt.in)
	}
}

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want tag.Tag
	}{
		{"true", true, tag.Byte(1)},
		{"false", false, tag.Byte(0)},
		{"null", nil, tag.String("")},
		{"string", "hi", tag.String("hi")},
		{"float64", 1.5, tag.Float(1.5)},
		{"float32", float32(0.25), tag.Float(0.25)},
		{"integral float stays float", 2.0, tag.Float(2)},
		{"int", 300, tag.Short(300)},
		{"uint8", uint8(200), tag.Short(200)},
		{"uint64", uint64(1 << 40), tag.Long(1 << 40)},
		{"number integer", json.Number("70000"), tag.Int(70000)},
		{"number float", json.Number("1e2"), tag.Float(100)},
		{"tag passthrough", tag.Double(3), tag.Double(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Arrays(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want tag.Tag
	}{
		{"byte array", []any{int64(1), int64(2), int64(3)}, tag.ByteArray{1, 2, 3}},
		{"int array", []any{int64(1), int64(2), int64(300)}, tag.IntArray{1, 2, 300}},
		{"long array", []any{int64(1), int64(2), int64(3000000000)}, tag.LongArray{1, 2, 3000000000}},
		{"empty", []any{}, tag.ByteArray{}},
		{"negative edge", []any{int64(-127)}, tag.ByteArray{-127}},
		{"min byte needs int array", []any{int64(-128)}, tag.IntArray{-128}},
		{"min int needs long array", []any{int64(math.MinInt32)}, tag.LongArray{math.MinInt32}},
		{"min int64", []any{int64(math.MinInt64)}, tag.LongArray{math.MinInt64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_Lists(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		got, err := Encode([]any{1.5, 2.5})
		require.NoError(t, err)
		require.Equal(t, tag.NewList(format.TagFloat, tag.Float(1.5), tag.Float(2.5)), got)
	})

	t.Run("booleans are not integers", func(t *testing.T) {
		got, err := Encode([]any{true, false})
		require.NoError(t, err)
		require.Equal(t, tag.NewList(format.TagByte, tag.Byte(1), tag.Byte(0)), got)
	})

	t.Run("strings", func(t *testing.T) {
		got, err := Encode([]any{"a", nil})
		require.NoError(t, err)
		require.Equal(t, tag.NewList(format.TagString, tag.String("a"), tag.String("")), got)
	})

	t.Run("mixed passes through with first element type", func(t *testing.T) {
		got, err := Encode([]any{"a", int64(1)})
		require.NoError(t, err)

		l, ok := got.(*tag.List)
		require.True(t, ok)
		require.Equal(t, format.TagString, l.ElemType)
		require.Equal(t, []tag.Tag{tag.String("a"), tag.Byte(1)}, l.Items)
		require.False(t, l.Homogeneous())
	})

	t.Run("nested arrays", func(t *testing.T) {
		got, err := Encode([]any{[]any{int64(1)}, []any{int64(1000)}})
		require.NoError(t, err)
		require.Equal(t, tag.NewList(format.TagByteArray, tag.ByteArray{1}, tag.IntArray{1000}), got)
	})
}

func TestEncode_Objects(t *testing.T) {
	obj := Object{
		{Key: "z", Value: int64(1)},
		{Key: "a", Value: Object{{Key: "inner", Value: "x"}}},
		{Key: "z", Value: int64(500)},
	}

	got, err := Encode(obj)
	require.NoError(t, err)

	c, ok := got.(*tag.Compound)
	require.True(t, ok)
	require.Equal(t, []string{"z", "a"}, c.Keys(), "duplicate keys keep the first position")
	v, _ := c.Get("z")
	require.Equal(t, tag.Short(500), v, "duplicate keys keep the last value")

	raw, ok := obj.Get("z")
	require.True(t, ok)
	require.Equal(t, int64(500), raw)

	m, err := Encode(map[string]any{"b": 1, "a": true, "c": []any{}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, m.(*tag.Compound).Keys())
}

func TestEncode_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"struct", struct{}{}},
		{"channel", make(chan int)},
		{"typed slice", []string{"a"}},
		{"uint64 overflow", uint64(math.MaxUint64)},
		{"number overflow", json.Number("99999999999999999999")},
		{"nested", Object{{Key: "bad", Value: []any{func() {}}}}},
		{"array overflow", []any{json.Number("1"), uint64(math.MaxUint64)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.in)
			require.ErrorIs(t, err, errs.ErrUnsupportedValue)
		})
	}
}

func parsers(t *testing.T) map[string]func([]byte) (any, error) {
	t.Helper()

	ps := map[string]func([]byte) (any, error){"std": parseStd}
	if simdjson.SupportedCPU() {
		ps["simd"] = parseSIMD
	}

	return ps
}

func TestParse_PreservesOrder(t *testing.T) {
	doc := []byte(`{"zeta": 1, "alpha": {"y": [1, 2.5, "s"], "x": null}, "mid": true}`)
	want := Object{
		{Key: "zeta", Value: int64(1)},
		{Key: "alpha", Value: Object{
			{Key: "y", Value: []any{int64(1), 2.5, "s"}},
			{Key: "x", Value: nil},
		}},
		{Key: "mid", Value: true},
	}

	for name, parse := range parsers(t) {
		t.Run(name, func(t *testing.T) {
			got, err := parse(doc)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestParse_Numbers(t *testing.T) {
	for name, parse := range parsers(t) {
		t.Run(name, func(t *testing.T) {
			got, err := parse([]byte(`[0, -5, 9223372036854775807, 1.0, 1e3, -0.5]`))
			require.NoError(t, err)
			require.Equal(t, []any{int64(0), int64(-5), int64(math.MaxInt64), 1.0, 1000.0, -0.5}, got)

			_, err = parse([]byte(`[18446744073709551615]`))
			require.ErrorIs(t, err, errs.ErrUnsupportedValue)

			_, err = parse([]byte(`{"a": 18446744073709551616}`))
			require.ErrorIs(t, err, errs.ErrUnsupportedValue, "integers past uint64 are not floats")

			_, err = parse([]byte(`[1, 99999999999999999999]`))
			require.ErrorIs(t, err, errs.ErrUnsupportedValue)

			_, err = parse([]byte(`[-9223372036854775809]`))
			require.ErrorIs(t, err, errs.ErrUnsupportedValue)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for name, parse := range parsers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := parse([]byte(`{"a": }`))
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("   "))
	require.Error(t, err)

	_, err = Parse([]byte(`1 2`))
	require.Error(t, err)
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`42`, int64(42)},
		{`"str"`, "str"},
		{`null`, nil},
		{`false`, false},
		{`0.5`, 0.5},
	}

	for _, tt := range tests {
		got, err := Parse([]byte(tt.in))
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestParse_JSONC(t *testing.T) {
	doc := []byte(`{
		// structure size
		"size": [3, 4, 5],
		/* block palette */
		"palette": ["stone", "air",],
	}`)

	got, err := Parse(doc)
	require.NoError(t, err)
	require.Equal(t, Object{
		{Key: "size", Value: []any{int64(3), int64(4), int64(5)}},
		{Key: "palette", Value: []any{"stone", "air"}},
	}, got)
}

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{"Count": 1, "id": "minecraft:stone", "Damage": 32768, "Pos": [0.5, 64.0], "blocks": []}`))
	require.NoError(t, err)

	want := tag.NewCompound()
	want.Set("Count", tag.Byte(1))
	want.Set("id", tag.String("minecraft:stone"))
	want.Set("Damage", tag.Int(32768))
	want.Set("Pos", tag.NewList(format.TagFloat, tag.Float(0.5), tag.Float(64)))
	want.Set("blocks", tag.ByteArray{})

	require.True(t, tag.Equal(want, got))
	require.Equal(t, want.Keys(), got.(*tag.Compound).Keys())

	_, err = FromJSON([]byte(`{"big": 18446744073709551615}`))
	require.ErrorIs(t, err, errs.ErrUnsupportedValue)
}

func BenchmarkFromJSON(b *testing.B) {
	doc := []byte(`{"a": [1, 2, 3], "b": {"c": "d", "e": [1.5, 2.5]}, "f": 123456789}`)
	for b.Loop() {
		if _, err := FromJSON(doc); err != nil {
			b.Fatal(err)
		}
	}
}
