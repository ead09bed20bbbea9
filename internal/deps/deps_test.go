package deps

import (
	"strings"
	"testing"
)

func TestCheckReportsMissingBinary(t *testing.T) {
	statuses := Check([]Requirement{{Name: "phantom", Command: "phantom-binary-zz"}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected phantom binary to be unavailable")
	}
	if !strings.Contains(statuses[0].Detail, "not found") {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestCheckReportsAvailableBinary(t *testing.T) {
	// go is guaranteed to be on PATH in the test environment.
	statuses := Check([]Requirement{{Name: "go", Command: "go"}})
	if !statuses[0].Available {
		t.Fatalf("expected go to be available: %s", statuses[0].Detail)
	}
}

func TestCheckEmptyCommand(t *testing.T) {
	statuses := Check([]Requirement{{Name: "blank"}})
	if statuses[0].Available {
		t.Fatal("expected blank command to be unavailable")
	}
}

func TestVerify(t *testing.T) {
	if err := Verify([]Requirement{{Name: "go", Command: "go"}}); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	err := Verify([]Requirement{{Name: "phantom", Command: "phantom-binary-zz", Description: "testing"}})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "unavailable") {
		t.Fatalf("unexpected error: %v", err)
	}
}
