package main

import (
	"reflect"
	"testing"
)

func TestRewriteScriptArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"epiccanvas"},
			want: []string{"epiccanvas"},
		},
		{
			name: "script first",
			in:   []string{"epiccanvas", "plan.yaml"},
			want: []string{"epiccanvas", "replay", "plan.yaml"},
		},
		{
			name: "script after value flag",
			in:   []string{"epiccanvas", "--format", "svg", "plan.yml"},
			want: []string{"epiccanvas", "--format", "svg", "replay", "plan.yml"},
		},
		{
			name: "script after equals and bool flags",
			in:   []string{"epiccanvas", "--days=40", "--pretty", "plan.YAML"},
			want: []string{"epiccanvas", "--days=40", "--pretty", "replay", "plan.YAML"},
		},
		{
			name: "explicit subcommand untouched",
			in:   []string{"epiccanvas", "replay", "plan.yaml"},
			want: []string{"epiccanvas", "replay", "plan.yaml"},
		},
		{
			name: "after double dash untouched",
			in:   []string{"epiccanvas", "--", "plan.yaml"},
			want: []string{"epiccanvas", "--", "plan.yaml"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rewriteScriptArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
