package htmlgen

import (
	"strings"
	"testing"
)

func TestRender_EscapesTextAndAttributes(t *testing.T) {
	node := El("label", Text(`Tom & "Jerry" <script>`)).
		WithAttr("for", `id-with-"quotes"`)
	out := Render(node)

	if strings.Contains(out, "<script>") {
		t.Fatalf("text not escaped: %s", out)
	}
	if !strings.Contains(out, "Tom &amp; &#34;Jerry&#34; &lt;script&gt;") {
		t.Fatalf("unexpected text escaping: %s", out)
	}
	if !strings.Contains(out, `for="id-with-&#34;quotes&#34;"`) {
		t.Fatalf("attribute not escaped: %s", out)
	}
}

func TestRender_BooleanAttribute(t *testing.T) {
	out := Render(El("input").WithAttr("type", "text").WithBoolAttr("required"))
	if out != `<input type="text" required>` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_VoidTagHasNoClosing(t *testing.T) {
	out := Render(El("input").WithAttr("type", "email"))
	if strings.Contains(out, "</input>") {
		t.Fatalf("void tag should not close: %s", out)
	}
}

func TestRender_NestedChildren(t *testing.T) {
	node := El("div",
		El("span", Text("a")),
		El("span", Text("b")),
	)
	if got := Render(node); got != "<div><span>a</span><span>b</span></div>" {
		t.Fatalf("unexpected output: %s", got)
	}
}

func TestRender_RawPassesThrough(t *testing.T) {
	out := Render(El("div", Raw("<em>kept</em>")))
	if !strings.Contains(out, "<em>kept</em>") {
		t.Fatalf("raw content escaped: %s", out)
	}
}

func TestNode_CopyOnWrite(t *testing.T) {
	base := El("input").WithAttr("type", "text")
	a := base.WithAttr("name", "a")
	b := base.WithAttr("name", "b")
	if Render(a) == Render(b) {
		t.Fatal("derived nodes should not share attribute state")
	}
	if len(base.Attrs) != 1 {
		t.Fatalf("base mutated: %+v", base.Attrs)
	}
}

func TestStyle_SkipsEmptyDeclarations(t *testing.T) {
	css := Style{}.
		Decl("color", "#111").
		Decl("margin", "").
		Decl("", "10px").
		Decl("padding", " 4px ").
		String()
	if css != "color:#111;padding:4px" {
		t.Fatalf("unexpected css: %s", css)
	}
}
