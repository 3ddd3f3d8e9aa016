package codegen

import (
	"testing"

	"github.com/gofmm/symgen/expr"
)

func TestRewriteVectorComponents(t *testing.T) {
	whitelist := map[string]bool{"r": true, "src": true}

	tests := []struct {
		name string
		node expr.Node
		want expr.Node
	}{
		{
			name: "whitelisted name",
			node: expr.Var("r0"),
			want: expr.Subscript{Base: expr.Var("r"), Index: expr.Int(0)},
		},
		{
			name: "multi digit index",
			node: expr.Var("src12"),
			want: expr.Subscript{Base: expr.Var("src"), Index: expr.Int(12)},
		},
		{
			name: "unlisted name stays",
			node: expr.Var("q0"),
			want: expr.Var("q0"),
		},
		{
			name: "no digit suffix stays",
			node: expr.Var("r"),
			want: expr.Var("r"),
		},
		{
			name: "digits inside name stay",
			node: expr.Var("r0x"),
			want: expr.Var("r0x"),
		},
		{
			name: "nested in call",
			node: expr.CallOf("sqrt", expr.Mul(expr.Var("r0"), expr.Var("r1"))),
			want: expr.CallOf("sqrt", expr.Mul(
				expr.Subscript{Base: expr.Var("r"), Index: expr.Int(0)},
				expr.Subscript{Base: expr.Var("r"), Index: expr.Int(1)},
			)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteVectorComponents(tt.node, whitelist); !expr.Equal(got, tt.want) {
				t.Errorf("RewriteVectorComponents(%s) = %s, want %s",
					expr.Format(tt.node), expr.Format(got), expr.Format(tt.want))
			}
		})
	}
}

func TestRewriteVectorComponentsEmptyWhitelist(t *testing.T) {
	n := expr.Var("r0")
	if got := RewriteVectorComponents(n, nil); !expr.Equal(got, n) {
		t.Errorf("empty whitelist rewrote %s to %s", expr.Format(n), expr.Format(got))
	}
}
