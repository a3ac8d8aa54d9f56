package settings

import "testing"

func TestReadConfigDefaults(t *testing.T) {
	retrieved, err := ReadConfig(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retrieved.Port != "9002" {
		t.Errorf("got port %q; want \"9002\"", retrieved.Port)
	}
	if retrieved.DBType != MEMORY {
		t.Errorf("got db type %q; want memory", retrieved.DBType)
	}
	if retrieved.DefaultPageTitle != "Untitled page" {
		t.Errorf("got default page title %q", retrieved.DefaultPageTitle)
	}
	if retrieved.MaxWSMessageSize != 50000 {
		t.Errorf("got max ws message size %d; want 50000", retrieved.MaxWSMessageSize)
	}
}

func TestReadConfigOverrides(t *testing.T) {
	retrieved, err := ReadConfig(`{
		"port": "8080",
		"dbType": "sqlite",
		"dbSettings": {"filename": "/tmp/test.db"},
		"defaultPageTitle": "New page"
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retrieved.Port != "8080" {
		t.Errorf("got port %q; want \"8080\"", retrieved.Port)
	}
	if retrieved.DBType != SQLITE {
		t.Errorf("got db type %q; want sqlite", retrieved.DBType)
	}
	if retrieved.DBSettings.Filename != "/tmp/test.db" {
		t.Errorf("got filename %q", retrieved.DBSettings.Filename)
	}
	if retrieved.DefaultPageTitle != "New page" {
		t.Errorf("got default page title %q", retrieved.DefaultPageTitle)
	}
}

func TestReadConfigRejectsUnknownDBType(t *testing.T) {
	if _, err := ReadConfig(`{"dbType": "oracle"}`); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestParseDBType(t *testing.T) {
	for _, raw := range []string{"sqlite", "postgres", "memory"} {
		if _, err := ParseDBType(raw); err != nil {
			t.Errorf("ParseDBType(%q): unexpected error: %v", raw, err)
		}
	}
	if _, err := ParseDBType("mysql"); err == nil {
		t.Error("ParseDBType(\"mysql\"): expected error")
	}
}
