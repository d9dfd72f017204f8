package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

func buttons() []Entry {
	return []Entry{
		{Kind: variant.KindButton, Args: args.Record{"label": "Primary Button", "variant": "primary"}},
		{Kind: variant.KindButton, Args: args.Record{"label": "Secondary Button", "variant": "secondary"}},
		{Kind: variant.KindButton, Args: args.Record{"label": "Green Button", "variant": "green"}},
	}
}

func TestComposePreservesOrder(t *testing.T) {
	t.Parallel()

	out, err := Compose(Spec{Entries: buttons()})
	require.NoError(t, err)
	require.Equal(t, "div", out.Tag())
	require.Equal(t, []string{"gallery", "gallery--row"}, out.Classes())
	require.Equal(t, 3, out.Len())

	want := []string{"button--primary", "button--secondary", "button--green"}
	for i, class := range want {
		require.True(t, out.Child(i).HasClass(class), "child %d", i)
	}
}

func TestComposePrependsLabel(t *testing.T) {
	t.Parallel()

	out, err := Compose(Spec{Label: "Light backgrounds", Direction: DirectionColumn, Background: "white", Entries: buttons()})
	require.NoError(t, err)
	require.Equal(t, []string{"gallery", "gallery--column", "gallery--bg-white"}, out.Classes())
	require.Equal(t, 4, out.Len())

	heading := out.Child(0)
	require.Equal(t, "h4", heading.Tag())
	require.Equal(t, "Light backgrounds", node.TextContent(heading))
	require.True(t, out.Child(1).HasClass("button--primary"))
}

func TestComposeFailsWholeGallery(t *testing.T) {
	t.Parallel()

	entries := buttons()
	entries = append(entries, Entry{Kind: variant.KindLink, Args: args.Record{"label": "Nope", "variant": "purple"}})

	out, err := Compose(Spec{Entries: entries})
	require.Equal(t, 0, out.Len())

	var compErr *positivuserrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	require.Equal(t, 3, compErr.Index)
	require.Equal(t, "link", compErr.Kind)
	require.Equal(t, "purple", compErr.Variant)

	var variantErr *positivuserrors.InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
}

func TestComposeWrapsMissingField(t *testing.T) {
	t.Parallel()

	_, err := Compose(Spec{Entries: []Entry{
		{Kind: variant.KindButton, Args: args.Record{"label": "ok", "variant": "green"}},
		{Kind: variant.KindButton, Args: args.Record{"variant": "primary"}},
	}})

	var compErr *positivuserrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	require.Equal(t, 1, compErr.Index)

	var missingErr *positivuserrors.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "label", missingErr.Field)
}

func TestComposeCaptions(t *testing.T) {
	t.Parallel()

	out, err := Compose(Spec{Entries: []Entry{
		{Kind: variant.KindIcon, Args: args.Record{"variant": "plus", "size": 36}, Caption: "36px"},
		{Kind: variant.KindIcon, Args: args.Record{"variant": "plus", "size": 72}, Caption: "72px"},
	}})
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	item := out.Child(1)
	require.Equal(t, []string{"gallery__item"}, item.Classes())
	require.True(t, item.Child(0).HasClass("icon"))
	require.Equal(t, "72px", node.TextContent(item.Child(1)))
}

func TestComposeCustomElement(t *testing.T) {
	t.Parallel()

	out, err := Compose(Spec{Element: "form", Direction: DirectionColumn, Entries: []Entry{
		{Kind: variant.KindInput, Args: args.Record{"label": "Name", "placeholder": "Name"}},
	}})
	require.NoError(t, err)
	require.Equal(t, "form", out.Tag())
}

func TestComposeEmptySpec(t *testing.T) {
	t.Parallel()

	out, err := Compose(Spec{})
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())
}

func TestComposeGroupsKeepsGroupsSeparate(t *testing.T) {
	t.Parallel()

	light := Spec{Label: "Light backgrounds", Direction: DirectionColumn, Entries: []Entry{
		{Kind: variant.KindLink, Args: args.Record{"label": "Black", "variant": "black"}},
		{Kind: variant.KindLink, Args: args.Record{"label": "Simple black", "variant": "simple-black"}},
	}}
	dark := Spec{Label: "Dark backgrounds", Direction: DirectionColumn, Background: "dark", Entries: []Entry{
		{Kind: variant.KindLink, Args: args.Record{"label": "White", "variant": "white"}},
	}}

	out, err := ComposeGroups(Spec{}, light, dark)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	first := out.Child(0)
	require.True(t, first.HasClass("gallery--group"))
	require.Equal(t, 3, first.Len())
	require.Equal(t, "Light backgrounds", node.TextContent(first.Child(0)))

	second := out.Child(1)
	require.True(t, second.HasClass("gallery--bg-dark"))
	require.Equal(t, 2, second.Len())
	require.Equal(t, "Dark backgrounds", node.TextContent(second.Child(0)))
}

func TestComposeGroupsReportsGroup(t *testing.T) {
	t.Parallel()

	bad := Spec{Entries: []Entry{{Kind: variant.KindLink, Args: args.Record{"variant": "black"}}}}
	_, err := ComposeGroups(Spec{}, Spec{Entries: buttons()}, bad)
	require.ErrorContains(t, err, "group 1")

	var compErr *positivuserrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	require.Equal(t, 0, compErr.Index)
}
