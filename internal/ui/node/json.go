package node

import (
	"github.com/goccy/go-json"
)

type jsonNode struct {
	Tag      string     `json:"tag,omitempty"`
	Text     string     `json:"text,omitempty"`
	Classes  []string   `json:"classes,omitempty"`
	Attrs    []jsonAttr `json:"attrs,omitempty"`
	Asset    string     `json:"asset,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes the tree with attributes kept as an ordered list.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(toJSON(n))
}

// UnmarshalJSON decodes a tree produced by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var decoded jsonNode
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*n = fromJSON(decoded)
	return nil
}

func toJSON(n Node) jsonNode {
	out := jsonNode{Tag: n.tag, Text: n.text, Asset: n.asset}
	if len(n.classes) > 0 {
		out.Classes = append([]string(nil), n.classes...)
	}
	for _, attr := range n.attrs {
		out.Attrs = append(out.Attrs, jsonAttr{Name: attr.Name, Value: attr.Value})
	}
	for _, child := range n.children {
		out.Children = append(out.Children, toJSON(child))
	}
	return out
}

func fromJSON(in jsonNode) Node {
	if in.Tag == "" {
		return Text(in.Text)
	}
	n := Element(in.Tag).WithClass(in.Classes...).WithAsset(in.Asset)
	for _, attr := range in.Attrs {
		n = n.WithAttr(attr.Name, attr.Value)
	}
	for _, child := range in.Children {
		n = n.Append(fromJSON(child))
	}
	return n
}
