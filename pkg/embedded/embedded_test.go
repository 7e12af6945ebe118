package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/resume.yaml":         {Data: []byte("name: test\n")},
		"data/config/effects.yaml": {Data: []byte("field: {}\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	defer Init(nil)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/resume.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileInvalidPrefix 测试无效路径前缀
func TestReadFileInvalidPrefix(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	_, err := ReadFile("assets/test.txt")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: assets/test.txt (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestPathNormalization 测试 "./" 前缀和反斜杠被规范化
func TestPathNormalization(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	data, err := ReadFile("./data/resume.yaml")
	if err != nil {
		t.Fatalf("ReadFile with ./ prefix failed: %v", err)
	}
	if string(data) != "name: test\n" {
		t.Errorf("unexpected content %q", data)
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/config/effects.yaml") {
		t.Error("Expected data/config/effects.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to be missing")
	}
	if Exists("other/effects.yaml") {
		t.Error("Expected invalid prefix to report missing")
	}
}
