package yamlsettings_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/yamlsettings"
)

func ExampleSource_Load() {
	dir, err := os.MkdirTemp("", "yamlsettings")
	if err != nil {
		fmt.Println(err)

		return
	}

	defer func() { _ = os.RemoveAll(dir) }()

	base := filepath.Join(dir, "base.yaml")
	override := filepath.Join(dir, "override.yaml")

	_ = os.WriteFile(base, []byte("db:\n  host: localhost\n  port: 5432\n"), 0o600)
	_ = os.WriteFile(override, []byte("db:\n  host: prod\n"), 0o600)

	// Files are listed in ascending priority order: override.yaml wins on
	// leaf-level conflicts, base.yaml fills in the rest.
	config, err := yamlsettings.Resolve(yamlsettings.Declaration{
		Files: []string{base, override},
	}, yamlsettings.Declaration{})
	if err != nil {
		fmt.Println(err)

		return
	}

	source := yamlsettings.NewSource(config)

	settings, err := source.Load()
	if err != nil {
		fmt.Println(err)

		return
	}

	db := settings["db"].(map[string]any)
	fmt.Printf("host=%v port=%v\n", db["host"], db["port"])
	// Output: host=prod port=5432
}

func ExampleResolve() {
	// A declaration must name at least one file.
	_, err := yamlsettings.Resolve(yamlsettings.Declaration{}, yamlsettings.Declaration{})

	fmt.Println(err)
	// Output: no settings files declared
}
