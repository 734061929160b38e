package policy

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := DefaultClassifier()

	tests := []struct {
		name        string
		path        string
		want        Disposition
		wantPattern string
	}{
		// Block tier
		{"env file", "/repo/.env", Block, `\.env$`},
		{"env variant", "config/.env.production", Block, `\.env\.[^/]+$`},
		{"env uppercase", "/repo/.ENV", Block, `\.env$`},
		{"secrets dir", "secrets/api.key", Block, `secrets/`},
		{"credentials dir", "app/credentials/db.json", Block, `credentials/`},
		{"dot credentials", "/home/u/.credentials.json", Block, `\.credentials`},
		{"npm lock", "web/package-lock.json", Block, `package-lock\.json$`},
		{"yarn lock", "yarn.lock", Block, `yarn\.lock$`},
		{"pnpm lock", "pnpm-lock.yaml", Block, `pnpm-lock\.yaml$`},
		{"gemfile lock", "Gemfile.lock", Block, `Gemfile\.lock$`},
		{"poetry lock", "poetry.lock", Block, `poetry\.lock$`},
		{"cargo lock", "crates/Cargo.lock", Block, `Cargo\.lock$`},
		{"composer lock", "composer.lock", Block, `composer\.lock$`},
		{"pem", "certs/server.pem", Block, `\.pem$`},
		{"crt", "tls/ca.crt", Block, `\.crt$`},
		{"p12", "keystore.p12", Block, `\.p12$`},
		{"pfx", "cert.pfx", Block, `\.pfx$`},
		{"ssh rsa key", "id_rsa", Block, `id_rsa`},
		{"ssh ed25519 pub", "/home/u/.ssh/id_ed25519.pub", Block, `id_ed25519`},
		{"ssh ecdsa", "keys/id_ecdsa", Block, `id_ecdsa`},
		{"git config", ".git/config", Block, `\.git/`},
		{"git dir itself", "/repo/.git", Block, `\.git$`},
		{"idea dir", ".idea/workspace.xml", Block, `\.idea/`},
		{"vscode settings", ".vscode/settings.json", Block, `\.vscode/settings\.json$`},

		// Warn tier
		{"dockerfile", "Dockerfile", Warn, `Dockerfile$`},
		{"package json", "package.json", Warn, `package\.json$`},
		{"workflow", ".github/workflows/ci.yml", Warn, `\.github/workflows/`},
		{"gitlab ci", ".gitlab-ci.yml", Warn, `\.gitlab-ci\.yml$`},
		{"compose yml", "docker-compose.yml", Warn, `docker-compose\.ya?ml$`},
		{"compose yaml", "deploy/docker-compose.yaml", Warn, `docker-compose\.ya?ml$`},
		{"makefile", "Makefile", Warn, `Makefile$`},
		{"webpack", "webpack.config.js", Warn, `webpack\.config\.`},
		{"vite", "vite.config.ts", Warn, `vite\.config\.`},
		{"tsconfig", "tsconfig.json", Warn, `tsconfig\.json$`},

		// Allow
		{"source file", "src/app.py", Allow, ""},
		{"readme", "README.md", Allow, ""},
		{"vscode other", ".vscode/launch.json", Allow, ""},
		{"github non workflow", ".github/CODEOWNERS", Allow, ""},
		{"env in name only", "src/environment.go", Allow, ""},
		{"empty", "", Allow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tt.path)
			if got.Disposition != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.path, got.Disposition, tt.want)
			}
			if got.Pattern != tt.wantPattern {
				t.Errorf("Classify(%q) pattern = %q, want %q", tt.path, got.Pattern, tt.wantPattern)
			}
			if got.Path != tt.path {
				t.Errorf("Classify(%q) path = %q, want original path", tt.path, got.Path)
			}
		})
	}
}

func TestClassify_Normalization(t *testing.T) {
	t.Parallel()

	c := DefaultClassifier()

	tests := []struct {
		name string
		path string
		want Disposition
	}{
		{"traversal into env", "src/../.env", Block},
		{"dot segments into git", "./a/./../.git/config", Block},
		{"windows separators", `C:\repo\secrets\token.txt`, Block},
		{"windows separators git", `repo\.git\HEAD`, Block},
		{"traversal out of secrets", "secrets/../src/app.py", Allow},
		{"double slashes", "src//nested///Dockerfile", Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.path); got.Disposition != tt.want {
				t.Errorf("Classify(%q) = %s (normalized %q), want %s", tt.path, got.Disposition, got.Normalized, tt.want)
			}
		})
	}
}

func TestClassify_BlockPrecedence(t *testing.T) {
	t.Parallel()

	// Warn rule listed first must not win over a later block rule.
	c := WithRules([]Rule{
		mustRule(`config/`, Warn),
		mustRule(`\.secret$`, Block),
	})

	got := c.Classify("config/app.secret")
	if got.Disposition != Block {
		t.Fatalf("Classify() = %s, want BLOCK", got.Disposition)
	}
	if got.Pattern != `\.secret$` {
		t.Errorf("pattern = %q, want block pattern", got.Pattern)
	}

	// Built-ins: secrets dir that also ends in package.json.
	if d := DefaultClassifier().Classify("secrets/package.json"); d.Disposition != Block {
		t.Errorf("secrets/package.json = %s, want BLOCK", d.Disposition)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	t.Parallel()

	// ".env.local" matches both `\.env\.[^/]+$` and `\.env\.local$`; the
	// earlier rule is reported.
	d := DefaultClassifier().Classify(".env.local")
	if d.Pattern != `\.env\.[^/]+$` {
		t.Errorf("pattern = %q, want first matching rule", d.Pattern)
	}
}

func TestNewClassifier_ExtraPatterns(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier([]string{`\.tfstate$`}, []string{`^infra/`})
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	if d := c.Classify("infra/terraform.tfstate"); d.Disposition != Block {
		t.Errorf("tfstate = %s, want BLOCK", d.Disposition)
	}
	if d := c.Classify("infra/main.tf"); d.Disposition != Warn || d.Pattern != `^infra/` {
		t.Errorf("infra/main.tf = %s (%q), want WARN ^infra/", d.Disposition, d.Pattern)
	}
	// Built-ins still come first within a tier.
	if d := c.Classify("infra/Dockerfile"); d.Pattern != `Dockerfile$` {
		t.Errorf("infra/Dockerfile pattern = %q, want built-in", d.Pattern)
	}

	if _, err := NewClassifier([]string{`(`}, nil); err == nil {
		t.Error("expected error for invalid extra pattern")
	}
}

func TestClassifyIn_ProjectRelative(t *testing.T) {
	t.Parallel()

	c, err := NewClassifier([]string{`^deploy/prod/`}, []string{`^migrations/`})
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}

	tests := []struct {
		name        string
		path        string
		projectDir  string
		want        Disposition
		wantPattern string
	}{
		{"absolute under project", "/work/app/deploy/prod/values.yaml", "/work/app", Block, `^deploy/prod/`},
		{"project dir with trailing slash", "/work/app/deploy/prod/values.yaml", "/work/app/", Block, `^deploy/prod/`},
		{"warn tier", "/work/app/migrations/001.sql", "/work/app", Warn, `^migrations/`},
		{"traversal resolved first", "/work/app/src/../deploy/prod/x", "/work/app", Block, `^deploy/prod/`},
		{"windows separators", `C:\work\app\deploy\prod\x`, `C:\work\app`, Block, `^deploy/prod/`},
		{"relative path as given", "deploy/prod/x", "/work/app", Block, `^deploy/prod/`},
		{"outside project", "/other/deploy/prod/x", "/work/app", Allow, ""},
		{"sibling with shared prefix", "/work/app2/deploy/prod/x", "/work/app", Allow, ""},
		{"no project dir", "/work/app/deploy/prod/x", "", Allow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := c.ClassifyIn(tt.path, tt.projectDir)
			if d.Disposition != tt.want || d.Pattern != tt.wantPattern {
				t.Errorf("ClassifyIn(%q, %q) = %s (%q), want %s (%q)",
					tt.path, tt.projectDir, d.Disposition, d.Pattern, tt.want, tt.wantPattern)
			}
		})
	}
}

func TestClassifyIn_BuiltinsIgnoreRelativePath(t *testing.T) {
	t.Parallel()

	// Rules passed to WithRules behave like built-ins.
	builtin := WithRules([]Rule{mustRule(`^src/`, Block)})
	if d := builtin.ClassifyIn("/work/app/src/main.go", "/work/app"); d.Disposition != Allow {
		t.Errorf("built-in rule matched relative path: %s", d.Disposition)
	}

	extra, err := NewClassifier([]string{`^src/`}, nil)
	if err != nil {
		t.Fatal(err)
	}
	d := extra.ClassifyIn("/work/app/src/main.go", "/work/app")
	if d.Disposition != Block {
		t.Errorf("extra rule: %s, want BLOCK", d.Disposition)
	}
	if d.Relative != "src/main.go" || d.Normalized != "/work/app/src/main.go" {
		t.Errorf("relative = %q, normalized = %q", d.Relative, d.Normalized)
	}
}

func TestNewRule_InvalidDisposition(t *testing.T) {
	t.Parallel()

	if _, err := NewRule(`x`, Allow); err == nil {
		t.Error("expected error for ALLOW rule")
	}
}

func TestValidatePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		wantErr  string
	}{
		{"valid", []string{`\.tfstate$`, `^infra/`}, ""},
		{"empty list", nil, ""},
		{"bad regexp", []string{`ok`, `[`}, "protection.block[1]"},
		{"blank", []string{" "}, "pattern is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePatterns(tt.patterns, "protection.block")
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	t.Parallel()

	d := DefaultClassifier().Classify("/repo/.env")
	msg := BlockMessage(d)
	for _, want := range []string{"BLOCKED", "File: /repo/.env", `Pattern: \.env$`, "Git internals (.git/)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("BlockMessage() missing %q:\n%s", want, msg)
		}
	}

	w := DefaultClassifier().Classify("Dockerfile")
	if got := WarnMessage(w); got != "⚠️ Editing sensitive file: Dockerfile (matched: Dockerfile$)" {
		t.Errorf("WarnMessage() = %q", got)
	}
}
