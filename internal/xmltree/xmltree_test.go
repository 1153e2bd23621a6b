package xmltree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0"?>
<mapping>
  <config>
    <option name="root" value="Pkg::Root"/>
    <option name="period" value="100"/>
  </config>
  <model>
    <predefType id="1" name="int32"/>
    <package name="Pkg">
      <package name="Sub">
        <type id="4" name="MyStruct" type="2"/>
      </package>
    </package>
  </model>
</mapping>
`

func TestParse_Navigation(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, "mapping", root.Tag)
	assert.Nil(t, root.Parent())

	model := root.FirstChild("model")
	require.NotNil(t, model)
	assert.Equal(t, root, model.Parent())

	prims := model.ChildrenByTag("predefType")
	require.Len(t, prims, 1)
	assert.Equal(t, "int32", prims[0].Attr("name"))
	assert.Equal(t, "", prims[0].Attr("missing"))

	opt := root.Find("option", "name", "root")
	require.NotNil(t, opt)
	assert.Equal(t, "Pkg::Root", opt.Attr("value"))

	// Descend reaches nested packages, direct-child match does not.
	assert.NotNil(t, model.Find("type", "", ""))
	assert.Nil(t, model.FirstChild("type"))
	assert.NotNil(t, model.FirstChildMatch("package", "name", "Pkg"))
	assert.Nil(t, model.FirstChildMatch("package", "name", "Sub"))

	all := model.FindAll("package", "", "")
	assert.Len(t, all, 2)
}

func TestParse_Malformed(t *testing.T) {
	for _, doc := range []string{
		"",
		"not xml at all <",
		"<a><b></a></b>",
		"<a>",
	} {
		_, err := Parse(strings.NewReader(doc))
		require.Error(t, err, "doc %q", doc)
		assert.True(t, errors.Is(err, ErrUnreadableInput), "doc %q: %v", doc, err)
	}
}

func TestIntAttr(t *testing.T) {
	root, err := Parse(strings.NewReader(`<e id="42" neg="-1" junk="x7"/>`))
	require.NoError(t, err)

	v, ok := IntAttr(root, "id", 1, 100)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = IntAttr(root, "id", 1, 10) // above bound
	assert.False(t, ok)
	_, ok = IntAttr(root, "neg", 0, 100)
	assert.False(t, ok)
	_, ok = IntAttr(root, "junk", 0, 100)
	assert.False(t, ok)
	_, ok = IntAttr(root, "absent", 0, 100)
	assert.False(t, ok)
}

func TestDocument_Write(t *testing.T) {
	root := NewNode("data-set-list")
	ds := root.NewChild("data-set")
	ds.SetAttr("id", "1002")
	ds.SetAttr("name", "Pkg_MyStruct")
	el := ds.NewChild("element")
	el.SetAttr("name", "x")
	el.SetAttr("type", "INT32")

	var buf bytes.Buffer
	require.NoError(t, NewDocument(root).Write(&buf))

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<data-set id="1002" name="Pkg_MyStruct">`)
	assert.Contains(t, out, `<element name="x" type="INT32">`)

	// Written documents parse back into the same shape.
	back, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "data-set-list", back.Tag)
	require.Len(t, back.Children(), 1)
	assert.Equal(t, "Pkg_MyStruct", back.Children()[0].Attr("name"))
}

func TestSetAttr_Replaces(t *testing.T) {
	n := NewNode("e")
	n.SetAttr("a", "1")
	n.SetAttr("a", "2")
	require.Len(t, n.Attrs(), 1)
	assert.Equal(t, "2", n.Attr("a"))
}
