package catalog

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "kakapo-home-")
	if err != nil {
		panic(err)
	}
	os.Setenv("KAKAPO_HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}
