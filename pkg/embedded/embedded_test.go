package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/modfly.yaml":        {Data: []byte("window:\n  width: 640\n")},
		"data/themes/gothic.yaml": {Data: []byte("name: gothic\n")},
		"data/themes/acid.yaml":   {Data: []byte("name: acid\n")},
		"data/themes/README.txt":  {Data: []byte("not a theme")},
	}
}

// TestNotInitialized 未初始化时所有访问都失败
func TestNotInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	if _, err := ReadFile("data/modfly.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile error = %v, want ErrNotInitialized", err)
	}
	if _, err := Glob("data/*"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/modfly.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"普通路径", "data/modfly.yaml", false},
		{"带 ./ 前缀", "./data/modfly.yaml", false},
		{"冗余分隔", "data//themes/../modfly.yaml", false},
		{"错误前缀", "assets/modfly.yaml", true},
		{"不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned no data", tt.path)
			}
		})
	}
}

func TestExistsGlobNames(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/themes/acid.yaml") || Exists("data/themes/clean.yaml") {
		t.Error("Exists reported wrong results")
	}

	matches, err := Glob("data/themes/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 || matches[0] != "data/themes/acid.yaml" {
		t.Errorf("Glob = %v", matches)
	}

	names, err := Names("data/themes", ".yaml")
	if err != nil {
		t.Fatalf("Names error: %v", err)
	}
	if len(names) != 2 || names[0] != "acid" || names[1] != "gothic" {
		t.Errorf("Names = %v, want [acid gothic]", names)
	}
}
