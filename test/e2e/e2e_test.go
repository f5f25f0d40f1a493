package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smallyu/go-weierstrass/cmd/keygen/commands"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/keygen"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("keygen %s failed: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

// TestKeyLifecycle generates keys on every curve through the CLI, verifies
// them through the CLI and checks them against the library.
func TestKeyLifecycle(t *testing.T) {
	dir := t.TempDir()

	for _, name := range curves.Names() {
		// 1. Generate through a config file
		conf := "curve: " + name + "\nformat: json\ncount: 2\nlog: error\n"
		if err := os.WriteFile(filepath.Join(dir, "keygen.yaml"), []byte(conf), 0600); err != nil {
			t.Fatal(err)
		}
		out := execute(t, "", "--datadir", dir)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("%s: got %d key pairs, want 2", name, len(lines))
		}

		c, err := curves.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, line := range lines {
			// 2. Verify through stdin
			got := execute(t, line, "--datadir", dir, "verify")
			if !strings.HasPrefix(got, "ok: ") {
				t.Errorf("%s: verify printed %q", name, got)
			}

			// 3. Check against the library
			var kp keygen.KeyPair
			if err := kp.Unmarshal([]byte(line)); err != nil {
				t.Fatal(err)
			}
			if kp.IsZero() {
				continue
			}
			if !c.IsOnCurve(kp.PublicX, kp.PublicY) {
				t.Errorf("%s: public key %s is off the curve", name, kp.PublicString())
			}
		}
	}
}

// TestTextOutputMatchesLibrary checks the default output against the
// secp256k1 package.
func TestTextOutputMatchesLibrary(t *testing.T) {
	s := secp256k1.New()
	secret, err := s.SecretKey()
	if err != nil {
		t.Fatal(err)
	}
	pub, err := s.PublicKeyString(secret)
	if err != nil {
		t.Fatal(err)
	}

	out := execute(t, "", "--datadir", t.TempDir(), "--log", "error",
		"--secret", secret.String())
	want := "secret key: " + secret.String() + "\npublic key: " + pub + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
