package tmpl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varList() []map[string]any {
	return []map[string]any{
		{"property_name": "aString", "property_type": "String"},
		{"property_name": "customType", "property_type": "CustomType"},
	}
}

func TestRender_Substitution(t *testing.T) {
	out, err := Render("t", "class {{ classname }}: {{classname}}", map[string]any{"classname": "Example"})
	require.NoError(t, err)
	assert.Equal(t, "class Example: Example", out)
}

func TestRender_Values(t *testing.T) {
	out, err := Render("t", "{{ n }} {{ b }} {{ none }} {{ m.k }} {{ s.k }}", map[string]any{
		"n":    42,
		"b":    true,
		"none": nil,
		"m":    map[string]any{"k": "mv"},
		"s":    map[string]string{"k": "sv"},
	})
	require.NoError(t, err)
	assert.Equal(t, "42 true  mv sv", out)
}

func TestRender_ForLoop(t *testing.T) {
	src := "{% for var in var_list %}var {{ var.property_name }}: {{ var.property_type }}?;{% endfor %}"

	out, err := Render("t", src, map[string]any{"var_list": varList()})
	require.NoError(t, err)
	assert.Equal(t, "var aString: String?;var customType: CustomType?;", out)
}

func TestRender_ForLoopMeta(t *testing.T) {
	out, err := Render("t", "{% for x in xs %}{{ loop.index }}/{{ loop.length }}={{ x }} {% endfor %}",
		map[string]any{"xs": []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "1/2=a 2/2=b ", out)

	out, err = Render("t", "{% for x in xs %}{{ loop.index0 }}{{ x }}{{ loop.first }}{{ loop.last }} {% endfor %}",
		map[string]any{"xs": []int{7, 8}})
	require.NoError(t, err)
	assert.Equal(t, "07truefalse 18falsetrue ", out)
}

func TestRender_NestedLoopsSeeParentBindings(t *testing.T) {
	src := "{% for c in classes %}{% for f in c.fields %}{{ prefix }}{{ c.name }}.{{ f }} {% endfor %}{% endfor %}"

	out, err := Render("t", src, map[string]any{
		"prefix": "#",
		"classes": []any{
			map[string]any{"name": "A", "fields": []string{"x", "y"}},
			map[string]any{"name": "B", "fields": nil},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "#A.x #A.y ", out)
}

func TestRender_LoopBindingsDoNotLeak(t *testing.T) {
	_, err := Render("t", "{% for x in xs %}{% endfor %}{{ x }}", map[string]any{"xs": []string{"a"}})

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "x", unbound.Name)
}

func TestRender_LoopShadowsParent(t *testing.T) {
	ctx := NewContext(map[string]any{"x": "outer", "xs": []string{"inner"}})

	tpl, err := Parse("t", "{% for x in xs %}{{ x }}{% endfor %}-{{ x }}")
	require.NoError(t, err)

	out, err := tpl.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "inner-outer", out)

	v, ok := ctx.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestRender_Unbound(t *testing.T) {
	out, err := Render("class.tmpl", "line one\n{{ unknown_var }}", map[string]any{})

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "unknown_var", unbound.Name)
	assert.Equal(t, 2, unbound.Line)
	assert.Empty(t, out)
}

func TestRender_UnboundAttribute(t *testing.T) {
	_, err := Render("t", "{{ var.missing }}", map[string]any{"var": map[string]any{}})

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "var.missing", unbound.Name)
}

func TestRender_UnboundCollection(t *testing.T) {
	_, err := Render("t", "{% for x in nothing %}{% endfor %}", nil)

	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "nothing", unbound.Name)
}

func TestRender_Default(t *testing.T) {
	out, err := Render("t", "[{{ missing }}]", nil, WithDefault("?"))
	require.NoError(t, err)
	assert.Equal(t, "[?]", out)
}

func TestRender_NotIterable(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"string", "abc"},
		{"int", 3},
		{"map", map[string]any{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render("t", "{% for x in v %}{{ x }}{% endfor %}", map[string]any{"v": tt.v})

			var notIterable *NotIterableError
			require.True(t, errors.As(err, &notIterable))
			assert.Empty(t, out)
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		directive string
		line      int
	}{
		{"unmatched for", "a\n{% for x in xs %}{{ x }}", "{% for x in xs %}", 2},
		{"unmatched endfor", "{% endfor %}", "{% endfor %}", 1},
		{"unknown directive", "x\n\n{% if cond %}", "{% if cond %}", 3},
		{"bad for header", "{% for x of xs %}{% endfor %}", "{% for x of xs %}", 1},
		{"bad loop var", "{% for x.y in xs %}{% endfor %}", "{% for x.y in xs %}", 1},
		{"endfor args", "{% for x in xs %}{% endfor x %}", "{% endfor x %}", 1},
		{"empty directive", "{%  %}", "{%  %}", 1},
		{"empty expression", "{{ }}", "{{  }}", 1},
		{"bad expression", "{{ a b }}", "{{ a b }}", 1},
		{"bad path", "{{ a..b }}", "{{ a..b }}", 1},
		{"unterminated var", "ok {{ name", "{{ name", 1},
		{"unterminated block", "{% for x in xs", "{% for x in xs", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Parse("t", tt.src)

			var syntaxErr *TemplateSyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v", err)
			assert.Nil(t, tpl)
			assert.Equal(t, tt.directive, syntaxErr.Directive)
			assert.Equal(t, tt.line, syntaxErr.Line)
		})
	}
}

func TestRender_SyntaxErrorProducesNoOutput(t *testing.T) {
	out, err := Render("t", "prefix {{ a }} {% endfor %}", map[string]any{"a": "x"})
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRender_Deterministic(t *testing.T) {
	vars := map[string]any{"classname": "C", "var_list": varList()}
	src := "{{ classname }}{% for var in var_list %} {{ var.property_name }}{% endfor %}"

	first, err := Render("t", src, vars)
	require.NoError(t, err)

	second, err := Render("t", src, vars)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_Whitespace(t *testing.T) {
	src := "class C {\n\t{% for var in var_list %}\n    var {{ var.property_name }}\n\t{% endfor %}\n}\n"
	vars := map[string]any{"var_list": varList()}

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"none", nil, "class C {\n\t\n    var aString\n\t\n    var customType\n\t\n}\n"},
		{"trim", []Option{WithTrimBlocks()}, "class C {\n\t    var aString\n\t    var customType\n\t}\n"},
		{"trim and lstrip", []Option{WithTrimBlocks(), WithLstripBlocks()}, "class C {\n    var aString\n    var customType\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render("t", src, vars, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_LstripOnlyWholeLineIndent(t *testing.T) {
	out, err := Render("t", "a {% for x in xs %}{{ x }}{% endfor %}", map[string]any{"xs": []string{"1"}}, WithLstripBlocks())
	require.NoError(t, err)
	assert.Equal(t, "a 1", out)
}

type fielder map[string]string

func (f fielder) Field(name string) (any, bool) {
	v, ok := f[name]
	return v, ok
}

func TestRender_Fielder(t *testing.T) {
	out, err := Render("t", "{{ f.name }}", map[string]any{"f": fielder{"name": "x"}})
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
