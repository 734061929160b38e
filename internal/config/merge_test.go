package config

import (
	"reflect"
	"testing"
)

func TestMergeLocal_NilLocal(t *testing.T) {
	t.Parallel()

	global := Default()
	if got := MergeLocal(&global, nil); got != &global {
		t.Error("MergeLocal(nil) should return global unchanged")
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		global Config
		local  LocalConfig
		want   Config
	}{
		{
			name:   "empty local inherits everything",
			global: Config{Protection: ProtectionConfig{Block: []string{"a"}}, Skills: SkillsConfig{Dir: "s"}, UI: UIConfig{Theme: "nord"}},
			local:  LocalConfig{},
			want:   Config{Protection: ProtectionConfig{Block: []string{"a"}}, Skills: SkillsConfig{Dir: "s"}, UI: UIConfig{Theme: "nord"}},
		},
		{
			name:   "patterns appended with dedup",
			global: Config{Protection: ProtectionConfig{Block: []string{"a", "b"}, Warn: []string{"w"}}},
			local:  LocalConfig{Protection: ProtectionConfig{Block: []string{"b", "c"}, Warn: []string{"x"}}},
			want:   Config{Protection: ProtectionConfig{Block: []string{"a", "b", "c"}, Warn: []string{"w", "x"}}},
		},
		{
			name:   "scalars replaced",
			global: Config{Skills: SkillsConfig{Dir: ".claude/skills"}, UI: UIConfig{Theme: "default"}},
			local:  LocalConfig{Skills: SkillsConfig{Dir: "skills"}, UI: UIConfig{Theme: "dracula"}},
			want:   Config{Skills: SkillsConfig{Dir: "skills"}, UI: UIConfig{Theme: "dracula"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			global := tt.global
			local := tt.local
			got := MergeLocal(&global, &local)
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("MergeLocal() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestMergeLocal_DoesNotMutateGlobal(t *testing.T) {
	t.Parallel()

	base := make([]string, 1, 4)
	base[0] = "a"
	global := Config{Protection: ProtectionConfig{Block: base}}
	local := LocalConfig{Protection: ProtectionConfig{Block: []string{"b"}}}

	merged := MergeLocal(&global, &local)
	merged.Protection.Block[0] = "changed"

	if global.Protection.Block[0] != "a" || len(global.Protection.Block) != 1 {
		t.Errorf("global mutated: %v", global.Protection.Block)
	}
}
