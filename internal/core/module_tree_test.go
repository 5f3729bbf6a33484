package core

import (
	"strings"
	"testing"
)

const sampleConfig = `<module name="Checker">
  <property name="severity" value="warning"/>
  <module name="TreeWalker">
    <module name="JavadocMethod">
      <property name="allowMissingParamTags" value="true"/>
    </module>
  </module>
</module>`

func TestParseConfig_RootMustBeChecker(t *testing.T) {
	if _, err := ParseConfig([]byte(`<module name="TreeWalker"/>`)); err == nil {
		t.Fatal("Expected an error for a non-Checker root")
	}
	if _, err := ParseConfig([]byte(`not xml at all`)); err == nil {
		t.Fatal("Expected an error for invalid XML")
	}

	root, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if root.Name != CheckerModuleName {
		t.Errorf("Expected Checker root, got %s", root.Name)
	}
}

func TestFindModule(t *testing.T) {
	root, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if found := FindModule(root, "JavadocMethod"); found == nil {
		t.Error("Expected to find JavadocMethod")
	}
	if found := FindModule(root, TreeWalkerModuleName); found == nil {
		t.Error("Expected to find TreeWalker")
	}
	if found := FindModule(root, "NoSuchRule"); found != nil {
		t.Errorf("Expected nil for an absent module, got %s", found.Name)
	}
}

func TestTargetModule_DescendsThroughScaffolding(t *testing.T) {
	root, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	target := TargetModule(root)
	if target == nil {
		t.Fatal("Expected a target module")
	}
	if target.Name != "JavadocMethod" {
		t.Errorf("Expected JavadocMethod, got %s", target.Name)
	}
}

func TestTargetModule_DirectCheckerChild(t *testing.T) {
	config := `<module name="Checker"><module name="NewlineAtEndOfFile"/></module>`
	root, err := ParseConfig([]byte(config))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	target := TargetModule(root)
	if target == nil || target.Name != "NewlineAtEndOfFile" {
		t.Fatalf("Expected NewlineAtEndOfFile, got %v", target)
	}
}

func TestTargetModule_ScaffoldOnly(t *testing.T) {
	config := `<module name="Checker"><module name="TreeWalker"/></module>`
	root, err := ParseConfig([]byte(config))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if target := TargetModule(root); target != nil {
		t.Errorf("Expected nil for a scaffold-only configuration, got %s", target.Name)
	}
}

func TestSetProperty_OverwriteAndAppend(t *testing.T) {
	m := &ConfigModule{Name: "JavadocMethod"}

	m.SetProperty("id", "example1")
	if v, ok := m.Property("id"); !ok || v != "example1" {
		t.Errorf("Expected id=example1, got %q (%v)", v, ok)
	}

	m.SetProperty("id", "example2")
	if v, _ := m.Property("id"); v != "example2" {
		t.Errorf("Expected the property to be overwritten, got %q", v)
	}
	if len(m.Properties) != 1 {
		t.Errorf("Expected 1 property after overwrite, got %d", len(m.Properties))
	}

	if _, ok := m.Property("absent"); ok {
		t.Error("Expected absent property lookup to report false")
	}
}

func TestMarshalConfig_EmitsProlog(t *testing.T) {
	root, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	data, err := MarshalConfig(root)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, `<?xml version="1.0"?>`) {
		t.Errorf("Expected the XML declaration first, got:\n%s", out)
	}
	if !strings.Contains(out, "-//Checkstyle//DTD Checkstyle Configuration 1.3//EN") {
		t.Errorf("Expected the configuration DTD, got:\n%s", out)
	}
	if !strings.Contains(out, `<module name="JavadocMethod">`) {
		t.Errorf("Expected the rule module in the output, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Expected a trailing newline")
	}
}

func TestMarshalConfig_RoundTripKeepsProperties(t *testing.T) {
	root, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	TargetModule(root).SetProperty("id", "example1")

	data, err := MarshalConfig(root)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	reparsed, err := ParseConfig(data[strings.Index(string(data), "<module"):])
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	target := TargetModule(reparsed)
	if v, _ := target.Property("id"); v != "example1" {
		t.Errorf("Expected id=example1 to survive the round trip, got %q", v)
	}
	if v, _ := target.Property("allowMissingParamTags"); v != "true" {
		t.Errorf("Expected the original property to survive, got %q", v)
	}
}
