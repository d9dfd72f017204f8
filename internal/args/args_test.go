package args

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

var inputLikeSchema = Schema{
	Kind: variant.KindInput,
	Fields: []Field{
		{Name: "label", Type: TypeString, Required: true},
		{Name: "placeholder", Type: TypeString, Default: ""},
		{Name: "type", Type: TypeString, Default: "text", Rules: "oneof=text email textarea"},
		{Name: "variant", Type: TypeVariant, Of: variant.KindInput, Default: variant.InputDefault},
		{Name: "required", Type: TypeBool, Default: false},
		{Name: "size", Type: TypeInt, Default: 58, Rules: "min=24,max=120"},
		{Name: "ratio", Type: TypeNumber, Default: 1.5},
	},
}

func TestBindAppliesEachDefaultIndependently(t *testing.T) {
	t.Parallel()

	values, err := inputLikeSchema.Bind(Record{"label": "Name"})
	require.NoError(t, err)
	require.Equal(t, "Name", values.String("label"))
	require.Equal(t, "", values.String("placeholder"))
	require.Equal(t, "text", values.String("type"))
	require.Equal(t, variant.InputDefault, values.Variant("variant"))
	require.False(t, values.Bool("required"))
	require.Equal(t, 58, values.Int("size"))
	require.InDelta(t, 1.5, values.Number("ratio"), 0)

	values, err = inputLikeSchema.Bind(Record{"label": "Email", "type": "email"})
	require.NoError(t, err)
	require.Equal(t, "email", values.String("type"))
	require.Equal(t, variant.InputDefault, values.Variant("variant"))

	values, err = inputLikeSchema.Bind(Record{"label": "Message", "variant": "dark"})
	require.NoError(t, err)
	require.Equal(t, "text", values.String("type"))
	require.Equal(t, variant.InputDark, values.Variant("variant"))
	require.Equal(t, []string{"input__field--dark"}, values.Bundle("variant").Classes)
}

func TestBindReportsMissingRequiredField(t *testing.T) {
	t.Parallel()

	_, err := inputLikeSchema.Bind(Record{"placeholder": "Name"})

	var missingErr *positivuserrors.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "label", missingErr.Field)
	require.Equal(t, "input", missingErr.Kind)
}

func TestBindTreatsNilAsAbsent(t *testing.T) {
	t.Parallel()

	_, err := inputLikeSchema.Bind(Record{"label": nil})
	var missingErr *positivuserrors.MissingFieldError
	require.ErrorAs(t, err, &missingErr)

	values, err := inputLikeSchema.Bind(Record{"label": "Name", "type": nil})
	require.NoError(t, err)
	require.Equal(t, "text", values.String("type"))
}

func TestBindRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		record Record
		field  string
	}{
		{name: "wrong type", record: Record{"label": 42}, field: "label"},
		{name: "rule violation", record: Record{"label": "x", "type": "password"}, field: "type"},
		{name: "number above max", record: Record{"label": "x", "size": 200}, field: "size"},
		{name: "number below min", record: Record{"label": "x", "size": 8}, field: "size"},
		{name: "fractional int", record: Record{"label": "x", "size": 24.7}, field: "size"},
		{name: "number as string", record: Record{"label": "x", "ratio": "wide"}, field: "ratio"},
		{name: "unknown field", record: Record{"label": "x", "colour": "red"}, field: "colour"},
		{name: "bool as string", record: Record{"label": "x", "required": "yes"}, field: "required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := inputLikeSchema.Bind(tc.record)
			var validationErr *positivuserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestBindResolvesVariantFields(t *testing.T) {
	t.Parallel()

	_, err := inputLikeSchema.Bind(Record{"label": "x", "variant": "neon"})

	var variantErr *positivuserrors.InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "input", variantErr.Kind)
	require.Equal(t, "neon", variantErr.Variant)
}

func TestBindAcceptsNumericKinds(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{36, int64(36), uint8(36), float32(36), 36.0} {
		values, err := inputLikeSchema.Bind(Record{"label": "x", "size": raw})
		require.NoError(t, err, "%T", raw)
		require.Equal(t, 36, values.Int("size"))
	}
}

func TestBindKeepsFractionalNumbers(t *testing.T) {
	t.Parallel()

	values, err := inputLikeSchema.Bind(Record{"label": "x", "ratio": 2.25, "size": 36.0})
	require.NoError(t, err)
	require.InDelta(t, 2.25, values.Number("ratio"), 0)
	require.Equal(t, 2, values.Int("ratio"))
	require.Equal(t, 36, values.Int("size"))
}

func TestBindDoesNotMutateRecord(t *testing.T) {
	t.Parallel()

	record := Record{"label": "Name"}
	_, err := inputLikeSchema.Bind(record)
	require.NoError(t, err)
	require.Equal(t, Record{"label": "Name"}, record)
}
