package variant

import (
	"fmt"
	"strings"
)

// Surface is the background drawn behind a link's arrow icon.
type Surface string

const (
	SurfaceNone  Surface = "none"
	SurfaceWhite Surface = "white"
	SurfaceDark  Surface = "dark"
	SurfaceGreen Surface = "green"
)

const simplePrefix = "simple-"

// LinkAxes is the decomposition of a link variant into independent axes.
type LinkAxes struct {
	Surface Surface
	Arrow   ColorRole
	Text    ColorRole
}

var linkAxes = []struct {
	variant Variant
	axes    LinkAxes
}{
	{LinkWhite, LinkAxes{Surface: SurfaceWhite, Arrow: RoleGreen, Text: RoleWhite}},
	{LinkWhite2, LinkAxes{Surface: SurfaceDark, Arrow: RoleWhite, Text: RoleWhite}},
	{LinkBlack, LinkAxes{Surface: SurfaceWhite, Arrow: RoleDark, Text: RoleDark}},
	{LinkBlack2, LinkAxes{Surface: SurfaceDark, Arrow: RoleGreen, Text: RoleDark}},
	{LinkGreen, LinkAxes{Surface: SurfaceGreen, Arrow: RoleDark, Text: RoleDark}},
	{LinkGreen2, LinkAxes{Surface: SurfaceGreen, Arrow: RoleWhite, Text: RoleWhite}},
	{LinkSimpleGreen, LinkAxes{Surface: SurfaceNone, Arrow: RoleGreen, Text: RoleGreen}},
	{LinkSimpleWhite, LinkAxes{Surface: SurfaceNone, Arrow: RoleWhite, Text: RoleWhite}},
	{LinkSimpleBlack, LinkAxes{Surface: SurfaceNone, Arrow: RoleDark, Text: RoleDark}},
}

type iconKey struct {
	surface Surface
	arrow   ColorRole
}

var linkIcons = map[iconKey]string{
	{SurfaceWhite, RoleGreen}: "link-1",
	{SurfaceWhite, RoleDark}:  "link-2",
	{SurfaceDark, RoleGreen}:  "link-3",
	{SurfaceDark, RoleWhite}:  "link-4",
	{SurfaceGreen, RoleDark}:  "link-5",
	{SurfaceGreen, RoleWhite}: "link-6",
	{SurfaceNone, RoleGreen}:  "link-simple-green-arrow",
	{SurfaceNone, RoleWhite}:  "link-simple-white-arrow",
	{SurfaceNone, RoleDark}:   "link-simple-black-arrow",
}

// DecomposeLink returns the axis values of a declared link variant.
func DecomposeLink(v Variant) (LinkAxes, bool) {
	for _, entry := range linkAxes {
		if entry.variant == v {
			return entry.axes, true
		}
	}
	return LinkAxes{}, false
}

// IsSimpleLink reports whether v renders the arrow only, after the label.
func IsSimpleLink(v Variant) bool {
	return strings.HasPrefix(string(v), simplePrefix)
}

func registerLinkVariants(r *registry) {
	variants := make([]Variant, 0, len(linkAxes))
	for _, entry := range linkAxes {
		variants = append(variants, entry.variant)
	}
	r.register(KindLink, true, variants, resolveLink)
}

func resolveLink(v Variant) (Bundle, error) {
	axes, ok := DecomposeLink(v)
	if !ok {
		return Bundle{}, fmt.Errorf("link variant %q has no axes", v)
	}
	icon, err := linkIconPart(axes)
	if err != nil {
		return Bundle{}, err
	}
	return merge(linkStructurePart(v), icon, linkTextPart(axes))
}

// linkStructurePart writes the order and the arrow layout token.
func linkStructurePart(v Variant) Bundle {
	if IsSimpleLink(v) {
		return Bundle{Order: OrderLabelFirst, Classes: []string{"link--arrow"}}
	}
	return Bundle{Order: OrderDecorationFirst}
}

// linkIconPart writes the icon asset.
func linkIconPart(axes LinkAxes) (Bundle, error) {
	asset, ok := linkIcons[iconKey{axes.Surface, axes.Arrow}]
	if !ok {
		return Bundle{}, fmt.Errorf("no link icon for %s surface with %s arrow", axes.Surface, axes.Arrow)
	}
	return Bundle{Asset: asset}, nil
}

// linkTextPart writes the text color role and its tone token.
func linkTextPart(axes LinkAxes) Bundle {
	part := Bundle{ColorRole: axes.Text}
	if tone := ToneClass("link", axes.Text); tone != "" {
		part.Classes = []string{tone}
	}
	return part
}
